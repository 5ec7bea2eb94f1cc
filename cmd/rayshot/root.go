package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	raylib "github.com/Dacode45/raylib-go"
)

type options struct {
	configPath string
	logLevel   string
	cfg        *raylib.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "rayshot",
		Short:         "Drive raylib from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "INI file with [Window] and [Log] settings")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides the config file)")
	cmd.AddCommand(
		newScreenshotCmd(opts),
		newCaptureCmd(opts),
		newInfoCmd(opts),
		newTextCmd(),
		newRandomCmd(),
		newOpenCmd(),
	)
	return cmd
}

func (o *options) setup() error {
	cfg, err := raylib.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg
	level := cfg.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	slogLevel, err := raylib.ResolveLogLevel(level)
	if err != nil {
		return err
	}
	traceLevel, err := raylib.ResolveTraceLogLevel(cfg.Log.TraceLevel)
	if err != nil {
		return err
	}
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.Level(slogLevel),
		Prefix:          "rayshot",
		ReportTimestamp: true,
	})
	o.logger = slog.New(handler)
	raylib.SetLogger(o.logger)
	raylib.SetTraceLogLevel(traceLevel)
	return nil
}

func newTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <file>",
		Short: "Print a text file loaded through raylib",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := raylib.LoadText(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
}

func newRandomCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "random <min> <max>",
		Short: "Print random values between min and max, both included",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid min: %w", err)
			}
			hi, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid max: %w", err)
			}
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			for range count {
				fmt.Fprintln(cmd.OutOrStdout(), raylib.GetRandomValue(int32(lo), int32(hi)))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of values to print")
	return cmd
}

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <url>",
		Short: "Open a URL with the default browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return raylib.OpenURL(args[0])
		},
	}
}

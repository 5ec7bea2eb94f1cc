package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	raylib "github.com/Dacode45/raylib-go"
)

// warmupFrames is how many frames are presented before the screen is read
// back, so the window has real content.
const warmupFrames = 3

// shotApp renders a test card and, once warmed up, hands the window to
// action before stopping.
type shotApp struct {
	h      *raylib.Handle
	th     *raylib.Thread
	frames int
	action func(h *raylib.Handle, th *raylib.Thread) error
	done   bool
}

func (app *shotApp) Init(h *raylib.Handle, th *raylib.Thread) error {
	app.h = h
	app.th = th
	return nil
}

func (app *shotApp) IsRunning() bool {
	return !app.done
}

func (app *shotApp) Render(d *raylib.DrawHandle) error {
	w, h := app.h.GetScreenWidth(), app.h.GetScreenHeight()
	d.ClearBackground(raylib.RayWhite)
	d.DrawRectangle(0, 0, int32(w), 8, raylib.Maroon)
	d.DrawCircle(raylib.Vector2{float32(w) / 2, float32(h) / 2}, float32(min(w, h))/4, raylib.SkyBlue)
	if err := d.DrawText("rayshot", 20, 20, 40, raylib.DarkGray); err != nil {
		return err
	}
	d.DrawFPS(int32(w)-90, int32(h)-30)
	return nil
}

func (app *shotApp) Update(h *raylib.Handle, th *raylib.Thread) error {
	app.frames++
	if app.frames < warmupFrames {
		return nil
	}
	app.done = true
	return app.action(h, th)
}

func (app *shotApp) Close() error {
	return nil
}

func (o *options) runWindow(action func(h *raylib.Handle, th *raylib.Thread) error) error {
	b, err := o.cfg.Builder()
	if err != nil {
		return err
	}
	return raylib.Run(b, &shotApp{action: action})
}

func newScreenshotCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "screenshot <file.png>",
		Short: "Open a window, draw a test card and save it as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			return opts.runWindow(func(h *raylib.Handle, th *raylib.Thread) error {
				if err := h.TakeScreenshot(th, path); err != nil {
					return err
				}
				opts.logger.Info("screenshot saved", "file", path)
				return nil
			})
		},
	}
}

func newCaptureCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "capture <file>",
		Short: "Capture the screen and encode it as png, bmp or tiff by extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format, err := raylib.FormatFromPath(path)
			if err != nil {
				return err
			}
			return opts.runWindow(func(h *raylib.Handle, th *raylib.Thread) error {
				img, err := h.GetScreenData(th)
				if err != nil {
					return err
				}
				defer img.Close()
				return writeImage(img, path, format)
			})
		},
	}
}

func writeImage(img *raylib.Image, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := img.Encode(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the GL vendor, renderer and version raylib runs on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runWindow(func(h *raylib.Handle, th *raylib.Thread) error {
				info, err := h.GraphicsInfo(th)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "vendor:     %s\n", info.Vendor)
				fmt.Fprintf(out, "renderer:   %s\n", info.Renderer)
				fmt.Fprintf(out, "version:    %s\n", info.Version)
				fmt.Fprintf(out, "glsl:       %s\n", info.ShadingLanguageVersion)
				fmt.Fprintf(out, "maxTexture: %d\n", info.MaxTextureSize)
				fmt.Fprintf(out, "screen:     %dx%d\n", h.GetScreenWidth(), h.GetScreenHeight())
				return nil
			})
		},
	}
}

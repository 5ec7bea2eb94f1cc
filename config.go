package raylib

import (
	"fmt"

	"gopkg.in/ini.v1"
)

const defaultConfig = `
[Window]
Width       = 800
Height      = 450
Title       = raylib-go
TargetFPS   = 60
VSync       = false
MSAA        = false
Fullscreen  = false
Resizable   = false
Hidden      = false
Undecorated = false

[Log]
Level      = info
TraceLevel = warning
`

type Config struct {
	Window struct {
		Width       int    `ini:"Width"`
		Height      int    `ini:"Height"`
		Title       string `ini:"Title"`
		TargetFPS   int    `ini:"TargetFPS"`
		VSync       bool   `ini:"VSync"`
		MSAA        bool   `ini:"MSAA"`
		Fullscreen  bool   `ini:"Fullscreen"`
		Resizable   bool   `ini:"Resizable"`
		Hidden      bool   `ini:"Hidden"`
		Undecorated bool   `ini:"Undecorated"`
	} `ini:"Window"`
	Log struct {
		Level      string `ini:"Level"`
		TraceLevel string `ini:"TraceLevel"`
	} `ini:"Log"`
}

// LoadConfig reads the INI file at path over the built-in defaults. An empty
// path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	options := ini.LoadOptions{
		SkipUnrecognizableLines: true,
	}
	var others []interface{}
	if path != "" {
		others = append(others, path)
	}
	iniFile, err := ini.LoadSources(options, []byte(defaultConfig), others...)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var c Config
	if err := iniFile.MapTo(&c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("invalid target fps %d", c.Window.TargetFPS)
	}
	if _, err := ResolveLogLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := ResolveTraceLogLevel(c.Log.TraceLevel); err != nil {
		return err
	}
	return nil
}

// Builder returns a Builder carrying the window settings of c.
func (c *Config) Builder() (*Builder, error) {
	traceLevel, err := ResolveTraceLogLevel(c.Log.TraceLevel)
	if err != nil {
		return nil, err
	}
	b := Init().
		Size(c.Window.Width, c.Window.Height).
		Title(c.Window.Title).
		TargetFPS(c.Window.TargetFPS).
		TraceLogLevel(traceLevel)
	if c.Window.VSync {
		b.VSync()
	}
	if c.Window.MSAA {
		b.MSAA4x()
	}
	if c.Window.Fullscreen {
		b.Fullscreen()
	}
	if c.Window.Resizable {
		b.Resizable()
	}
	if c.Window.Hidden {
		b.Hidden()
	}
	if c.Window.Undecorated {
		b.Undecorated()
	}
	return b, nil
}

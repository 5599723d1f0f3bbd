package learngl

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// WindowConfig describes the window the exercises open.
type WindowConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Fullscreen bool   `toml:"fullscreen"` // on the primary monitor
	VSync      bool   `toml:"vsync"`
}

// Config is the runtime configuration of the example binaries.
type Config struct {
	Variant  string       `toml:"variant"`
	Window   WindowConfig `toml:"window"`
	Textures []string     `toml:"textures"`
	Verbose  bool         `toml:"verbose"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Variant: "color",
		Window: WindowConfig{
			Width:  800,
			Height: 800,
			Title:  "opengl",
			VSync:  true,
		},
		Textures: append([]string(nil), DefaultTexturePaths...),
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.Warn("unknown config keys", "path", path, "keys", undecoded)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the window size is positive and the variant exists.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if _, err := LookupVariant(c.Variant); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

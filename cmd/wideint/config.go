package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// config holds the settings shared by every command. Values come from the
// defaults, then the TOML file named by --config, then any flags set on the
// command line.
type config struct {
	Type       string `toml:"type"`
	Base       int    `toml:"base"`
	Iterations int    `toml:"iterations"`
	Jobs       int    `toml:"jobs"`
	Color      string `toml:"color"`
}

func defaultConfig() config {
	return config{
		Type:       "u256",
		Base:       10,
		Iterations: 1000,
		Color:      "auto",
	}
}

func loadConfig(path string, cfg *config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return nil
}

// overrideConfig copies every flag the user actually set over the matching
// config field.
func overrideConfig(flags *pflag.FlagSet, cfg *config) (err error) {
	if flags.Changed("type") {
		if cfg.Type, err = flags.GetString("type"); err != nil {
			return err
		}
	}
	if flags.Changed("base") {
		if cfg.Base, err = flags.GetInt("base"); err != nil {
			return err
		}
	}
	if flags.Changed("color") {
		if cfg.Color, err = flags.GetString("color"); err != nil {
			return err
		}
	}
	if flags.Lookup("iterations") != nil && flags.Changed("iterations") {
		if cfg.Iterations, err = flags.GetInt("iterations"); err != nil {
			return err
		}
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		if cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *config) validate() error {
	if _, err := lookupType(cfg.Type); err != nil {
		return err
	}
	switch cfg.Base {
	case 2, 8, 10, 16:
	default:
		return fmt.Errorf("base must be 2, 8, 10 or 16, found %d", cfg.Base)
	}
	if cfg.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative, found %d", cfg.Iterations)
	}
	cfg.Color = strings.ToLower(cfg.Color)
	switch cfg.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("color must be auto, on or off, found %q", cfg.Color)
	}
	return nil
}

func (cfg *config) useColor(f *os.File) bool {
	return cfg.Color == "on" || (cfg.Color == "auto" && isTerminal(f))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

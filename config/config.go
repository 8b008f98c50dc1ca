// Package config loads the console's TOML configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the persisted config file schema. Zero or negative numeric
// fields fall back to defaults on load.
type Config struct {
	Font          string `toml:"font"` // "sans" or "mono"
	MaxLines      int    `toml:"max_lines"`
	Prompt        string `toml:"prompt"`
	ContPrompt    string `toml:"cont_prompt"`
	CmdPrefix     string `toml:"cmd_prefix"`
	MaxDepth      int    `toml:"max_depth"`
	InlineMembers int    `toml:"inline_members"`
	WheelLines    int    `toml:"wheel_lines"`
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	Scale         int    `toml:"scale"`
	LogPath       string `toml:"log_path"`
	Source        string `toml:"-"`
}

func Default() Config {
	return Config{
		Font:          "sans",
		MaxLines:      200,
		Prompt:        "> ",
		ContPrompt:    ".. ",
		CmdPrefix:     "!",
		MaxDepth:      3,
		InlineMembers: 5,
		WheelLines:    3,
		Width:         480,
		Height:        360,
		Scale:         2,
	}
}

// DefaultPath is ~/.flint/config.toml, or empty when the home directory is
// unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flint", "config.toml")
}

// Load reads path, or the default path when empty. A missing file is not an
// error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return cfg.sanitized(), nil
}

func (c Config) sanitized() Config {
	def := Default()
	if c.MaxLines < 1 {
		c.MaxLines = def.MaxLines
	}
	if c.MaxDepth < 1 {
		c.MaxDepth = def.MaxDepth
	}
	if c.InlineMembers < 1 {
		c.InlineMembers = def.InlineMembers
	}
	if c.WheelLines < 1 {
		c.WheelLines = def.WheelLines
	}
	if c.Width < 64 {
		c.Width = def.Width
	}
	if c.Height < 64 {
		c.Height = def.Height
	}
	if c.Scale < 1 {
		c.Scale = def.Scale
	}
	if c.Prompt == "" {
		c.Prompt = def.Prompt
	}
	if c.ContPrompt == "" {
		c.ContPrompt = def.ContPrompt
	}
	if c.CmdPrefix == "" {
		c.CmdPrefix = def.CmdPrefix
	}
	return c
}

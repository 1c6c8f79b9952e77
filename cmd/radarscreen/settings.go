// cmd/radarscreen/settings.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HefnySco/radarscreen/pkg/log"
	"github.com/HefnySco/radarscreen/pkg/radar"
	"github.com/HefnySco/radarscreen/pkg/util"

	"github.com/spf13/viper"
)

// Settings holds everything a command needs: the grid configuration, the
// surface size, the highlighted cells, and logging options.
type Settings struct {
	radar.Config `mapstructure:",squash"`
	Width        int         `mapstructure:"width"`
	Height       int         `mapstructure:"height"`
	Log          LogSettings `mapstructure:"log"`

	// Highlights are decoded separately since they may be given either
	// as a list in the config file or as a JSON string.
	Highlights []radar.HighlightCell `mapstructure:"-"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

func DefaultSettings() Settings {
	return Settings{
		Config: radar.DefaultConfig(),
		Width:  400,
		Height: 400,
		Log:    LogSettings{Level: "info"},
	}
}

// configErr records the result of reading the config file.
var configErr error

// SetDefaults sets all default values in viper.
func SetDefaults() {
	defaults := DefaultSettings()

	viper.SetDefault("sections", defaults.Sections)
	viper.SetDefault("rings", defaults.Rings)
	viper.SetDefault("rotation_steps", defaults.RotationSteps)
	viper.SetDefault("rotation", defaults.Rotation)
	viper.SetDefault("draw_pointer", defaults.DrawPointer)
	viper.SetDefault("width", defaults.Width)
	viper.SetDefault("height", defaults.Height)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.dir", defaults.Log.Dir)
}

// ConfigDir returns the directory searched for radarscreen.yaml (or
// .json) when no config file is given explicitly.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".radarscreen"
	}
	return filepath.Join(dir, "radarscreen")
}

// LoadSettings decodes and validates the current viper configuration.
func LoadSettings() (Settings, error) {
	var notFound viper.ConfigFileNotFoundError
	if configErr != nil && !errors.As(configErr, &notFound) {
		return Settings{}, fmt.Errorf("unable to read config file: %w", configErr)
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, err
	}

	var err error
	if s.Highlights, err = loadHighlights(); err != nil {
		return Settings{}, err
	}

	var e util.ErrorLogger
	e.Push("settings")
	if s.Width < 1 || s.Height < 1 {
		e.ErrorString("surface size must be positive (got %dx%d)", s.Width, s.Height)
	}
	if err := s.Config.Validate(); err != nil {
		e.Error(err)
	}
	e.Pop()
	if e.HaveErrors() {
		return Settings{}, errors.New(e.String())
	}
	return s, nil
}

func loadHighlights() ([]radar.HighlightCell, error) {
	switch v := viper.Get("highlights").(type) {
	case nil:
		return nil, nil
	case string:
		return ParseHighlights(v)
	default:
		var cells []radar.HighlightCell
		if err := viper.UnmarshalKey("highlights", &cells); err != nil {
			return nil, fmt.Errorf("highlights: %w", err)
		}
		return cells, nil
	}
}

// ParseHighlights decodes a JSON array of highlighted cells, reporting
// misspelled or mistyped fields.
func ParseHighlights(s string) ([]radar.HighlightCell, error) {
	if s == "" {
		return nil, nil
	}

	var e util.ErrorLogger
	e.Push("highlights")
	util.CheckJSON[[]radar.HighlightCell]([]byte(s), &e)
	e.Pop()
	if e.HaveErrors() {
		return nil, errors.New(e.String())
	}

	var cells []radar.HighlightCell
	if err := util.UnmarshalJSON([]byte(s), &cells); err != nil {
		return nil, fmt.Errorf("highlights: %w", err)
	}
	return cells, nil
}

// NewLogger returns the logger configured by the settings.
func (s Settings) NewLogger() *log.Logger {
	return log.New(s.Log.Level, s.Log.Dir)
}

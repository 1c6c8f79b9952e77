// cmd/radarscreen/root.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"strings"

	"github.com/HefnySco/radarscreen/pkg/util"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var profiler *util.Profiler

var rootCmd = &cobra.Command{
	Use:   "radarscreen",
	Short: "Draw a radar-style polar grid with highlighted cells",
	Long: `radarscreen draws a polar grid of sections (rays) and rings, optionally
rotated, and fills highlighted (section, ring) cells with a color and a
distance label.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		profiler, err = util.StartProfiler(viper.GetString("cpuprofile"), viper.GetString("memprofile"))
		return err
	},
}

// execute runs the command line. The profiler is stopped here rather than
// in a post-run hook since cobra skips those when a command fails.
func execute() error {
	err := rootCmd.Execute()
	if perr := profiler.Stop(); err == nil {
		err = perr
	}
	profiler = nil
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (YAML or JSON)")
	flags.String("loglevel", "info", "logging level: debug, info, warn, error")
	flags.String("logdir", "", "log file directory")
	flags.String("cpuprofile", "", "write CPU profile to file")
	flags.String("memprofile", "", "write memory profile to this file")

	flags.Int("sections", 0, "number of sections (rays)")
	flags.Int("rings", 0, "number of rings")
	flags.Int("rotation-steps", 0, "rotation in half-section steps")
	flags.Float32("rotation", 0, "additional rotation in radians")
	flags.Bool("draw-pointer", false, "draw the pointer above the grid")
	flags.Int("width", 0, "surface width in pixels")
	flags.Int("height", 0, "surface height in pixels")
	flags.String("highlights", "", `highlighted cells as JSON, e.g. '[{"section":3,"ring":2,"color":"#ff0000"}]'`)

	for key, flag := range map[string]string{
		"config":         "config",
		"log.level":      "loglevel",
		"log.dir":        "logdir",
		"cpuprofile":     "cpuprofile",
		"memprofile":     "memprofile",
		"sections":       "sections",
		"rings":          "rings",
		"rotation_steps": "rotation-steps",
		"rotation":       "rotation",
		"draw_pointer":   "draw-pointer",
		"width":          "width",
		"height":         "height",
		"highlights":     "highlights",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	SetDefaults()

	// Older configurations call the rings "depth".
	viper.RegisterAlias("depth", "rings")

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("radarscreen")
		viper.AddConfigPath(ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("RADARSCREEN")
	// e.g., RADARSCREEN_LOG_LEVEL for log.level
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; a malformed one is reported when the
	// settings are loaded.
	configErr = viper.ReadInConfig()
}

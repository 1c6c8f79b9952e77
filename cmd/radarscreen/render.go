// cmd/radarscreen/render.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/HefnySco/radarscreen/pkg/log"
	"github.com/HefnySco/radarscreen/pkg/radar"
	"github.com/HefnySco/radarscreen/pkg/rand"
	"github.com/HefnySco/radarscreen/pkg/renderer"

	"github.com/goforj/godump"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the radar screen to a PNG file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := LoadSettings()
		if err != nil {
			return err
		}
		lg := s.NewLogger()

		opts := renderOptions{}
		opts.output, _ = cmd.Flags().GetString("output")
		opts.capture, _ = cmd.Flags().GetString("capture")
		opts.dump, _ = cmd.Flags().GetBool("dump")
		opts.stats, _ = cmd.Flags().GetBool("stats")

		demo, _ := cmd.Flags().GetBool("demo")
		nrandom, _ := cmd.Flags().GetInt("random")
		seed, _ := cmd.Flags().GetInt64("seed")
		s.Highlights = extraHighlights(s, demo, nrandom, seed)

		return render(s, opts, cmd.OutOrStdout(), lg)
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "radar.png", "PNG file to write")
	renderCmd.Flags().String("capture", "", "also write the recorded drawing commands to this file")
	renderCmd.Flags().Bool("dump", false, "dump the computed highlight wedges")
	renderCmd.Flags().Bool("stats", false, "report tessellation statistics")
	renderCmd.Flags().Bool("demo", false, "add the demonstration highlights")
	renderCmd.Flags().Int("random", 0, "add this many randomly chosen highlights")
	renderCmd.Flags().Int64("seed", 1, "seed for --random")
	rootCmd.AddCommand(renderCmd)
}

type renderOptions struct {
	output, capture string
	dump, stats     bool
}

// extraHighlights appends the demonstration and random cells requested on
// the command line to the configured ones.
func extraHighlights(s Settings, demo bool, nrandom int, seed int64) []radar.HighlightCell {
	cells := s.Highlights
	if demo {
		cells = append(cells, radar.DemoHighlights()...)
	}
	if nrandom > 0 {
		cells = append(cells, radar.RandomHighlights(rand.New(seed), s.Config, nrandom, nil)...)
	}
	return cells
}

// render draws the screen into a command buffer, which is then replayed
// onto an image and, as requested, saved or tessellated.
func render(s Settings, opts renderOptions, out io.Writer, lg *log.Logger) error {
	cb := renderer.GetCommandBuffer(s.Width, s.Height)
	defer renderer.ReturnCommandBuffer(cb)

	sc, err := radar.New(cb, s.Config, lg)
	if err != nil {
		return err
	}
	// Update repaints everything, so the initial grid-only paint can go.
	cb.Reset()
	if err := sc.Update(s.Config, s.Highlights); err != nil {
		return err
	}

	img := renderer.NewImageSurface(s.Width, s.Height)
	if err := cb.Replay(img); err != nil {
		return err
	}
	if err := writeFile(opts.output, img.WritePNG); err != nil {
		return err
	}
	lg.Info("wrote image", slog.String("path", opts.output), slog.Any("stats", img.Stats()))

	if opts.capture != "" {
		if err := writeFile(opts.capture, func(w io.Writer) error { return renderer.WriteCapture(w, cb) }); err != nil {
			return err
		}
		lg.Info("wrote capture", slog.String("path", opts.capture), slog.Int("words", len(cb.Buf)))
	}

	if opts.dump {
		wedges, _ := radar.HighlightWedges(s.Config, sc.Viewport(), s.Highlights, lg)
		godump.Fdump(out, wedges)
	}

	if opts.stats {
		mesh := renderer.NewMeshSurface(s.Width, s.Height)
		defer mesh.Release()
		if err := cb.Replay(mesh); err != nil {
			return err
		}
		stats := mesh.Stats()
		lg.Info("tessellated", slog.Any("stats", stats))
		fmt.Fprintln(out, stats.String())
	}

	return nil
}

// writeFile creates the named file and passes it to write, reporting
// errors from either write or closing the file.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

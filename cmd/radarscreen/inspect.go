// cmd/radarscreen/inspect.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/HefnySco/radarscreen/pkg/renderer"
	"github.com/HefnySco/radarscreen/pkg/util"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <capture>",
	Short: "Summarize a capture written by render --capture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pngPath, _ := cmd.Flags().GetString("png")
		return inspect(args[0], pngPath, cmd.OutOrStdout())
	},
}

func init() {
	inspectCmd.Flags().String("png", "", "replay the capture and write the result to this PNG file")
	rootCmd.AddCommand(inspectCmd)
}

func inspect(path, pngPath string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cb, err := renderer.ReadCapture(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	summary, err := cb.Summary()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Fprintf(out, "%s: %.0fx%.0f surface, %d words\n", path, cb.Extent.Width(), cb.Extent.Height(), len(cb.Buf))
	for _, op := range util.SortedMapKeys(summary) {
		fmt.Fprintf(out, "  %-14s %6d\n", op, summary[op])
	}
	for _, text := range cb.Texts() {
		fmt.Fprintf(out, "  label %q\n", text)
	}

	if pngPath != "" {
		img := renderer.NewImageSurface(int(cb.Extent.Width()), int(cb.Extent.Height()))
		if err := cb.Replay(img); err != nil {
			return err
		}
		return writeFile(pngPath, img.WritePNG)
	}
	return nil
}

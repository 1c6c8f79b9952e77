// cmd/radarscreen/main.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// radarscreen draws a rotatable polar grid with highlighted wedge cells.
// Usage:
//
//	radarscreen render [-o radar.png] [--capture file.msgpack.zst] [--dump] [--stats]
//	radarscreen layout [--degrees]
//	radarscreen inspect <capture.msgpack.zst>
//
// The grid is configured with flags, a YAML or JSON config file, or
// RADARSCREEN_* environment variables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

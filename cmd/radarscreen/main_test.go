// cmd/radarscreen/main_test.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HefnySco/radarscreen/pkg/radar"
	"github.com/HefnySco/radarscreen/pkg/renderer"
)

func TestParseHighlights(t *testing.T) {
	cells, err := ParseHighlights(`[{"section": 3, "ring": 2, "color": "#ff0000"}, {"section": 5, "ring": 4, "color": "green"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []radar.HighlightCell{{Section: 3, Ring: 2, Color: "#ff0000"}, {Section: 5, Ring: 4, Color: "green"}}
	if len(cells) != len(expected) || cells[0] != expected[0] || cells[1] != expected[1] {
		t.Errorf("got %v, expected %v", cells, expected)
	}

	if cells, err := ParseHighlights(""); cells != nil || err != nil {
		t.Errorf("empty string: got %v, %v", cells, err)
	}

	for _, bad := range []string{
		`[{"section": 3, "rnig": 2, "color": "red"}]`,
		`[{"section": "three", "ring": 2, "color": "red"}]`,
		`[{"section": 3,`,
	} {
		if _, err := ParseHighlights(bad); err == nil {
			t.Errorf("%s: expected an error", bad)
		} else if !strings.Contains(err.Error(), "highlights") {
			t.Errorf("%s: error %q does not mention highlights", bad, err)
		}
	}
}

func TestLayoutJSON(t *testing.T) {
	l := radar.ComputeLayout(radar.Config{Sections: 4, Rings: 2}, radar.NewViewport(200, 100))
	b, err := json.Marshal(LayoutJSON(l, true))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(b)

	// Keys are emitted in insertion order.
	last := -1
	for _, key := range []string{`"viewport"`, `"effective_angle"`, `"grid_rotation"`, `"ray_angles"`,
		`"ring_radii"`, `"sections"`, `"rings"`} {
		idx := strings.Index(s, key)
		if idx <= last {
			t.Errorf("key %s out of order in %s", key, s)
		}
		last = idx
	}

	var decoded struct {
		Viewport struct {
			OuterRadius float64 `json:"outer_radius"`
		} `json:"viewport"`
		GridRotation float64   `json:"grid_rotation"`
		RayAngles    []float64 `json:"ray_angles"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if d := decoded.Viewport.OuterRadius - 40; d < -1e-3 || d > 1e-3 {
		t.Errorf("outer radius: got %f, expected 40", decoded.Viewport.OuterRadius)
	}
	// Angles are in degrees.
	if d := decoded.GridRotation + 45; d < -1e-3 || d > 1e-3 {
		t.Errorf("grid rotation: got %f, expected -45", decoded.GridRotation)
	}
	if len(decoded.RayAngles) != 4 || decoded.RayAngles[3] < 359.99 {
		t.Errorf("ray angles: got %v", decoded.RayAngles)
	}
}

func TestRenderAndInspect(t *testing.T) {
	dir := t.TempDir()
	s := DefaultSettings()
	s.Width, s.Height = 200, 160
	s.DrawPointer = true
	s.Highlights = []radar.HighlightCell{{Section: 3, Ring: 2, Color: "#ff0000"}, {Section: 7, Ring: 4, Color: "bogus"}}

	opts := renderOptions{
		output:  filepath.Join(dir, "radar.png"),
		capture: filepath.Join(dir, "radar.msgpack.zst"),
		dump:    true,
		stats:   true,
	}
	var out bytes.Buffer
	if err := render(s, opts, &out, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if fi, err := os.Stat(opts.output); err != nil || fi.Size() == 0 {
		t.Errorf("no PNG written: %v", err)
	}
	if !strings.Contains(out.String(), "fills") {
		t.Errorf("stats not reported: %q", out.String())
	}

	f, err := os.Open(opts.capture)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	cb, err := renderer.ReadCapture(f)
	f.Close()
	if err != nil {
		t.Fatalf("ReadCapture: %v", err)
	}
	if texts := cb.Texts(); len(texts) != 1 || texts[0] != "16 m" {
		t.Errorf("capture labels: got %q", texts)
	}

	out.Reset()
	pngPath := filepath.Join(dir, "replayed.png")
	if err := inspect(opts.capture, pngPath, &out); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, s := range []string{"200x160", "Arc", "FillText", `label "16 m"`} {
		if !strings.Contains(out.String(), s) {
			t.Errorf("inspect output %q does not contain %q", out.String(), s)
		}
	}
	if _, err := os.Stat(pngPath); err != nil {
		t.Errorf("replayed PNG not written: %v", err)
	}

	if err := inspect(filepath.Join(dir, "missing"), "", &out); err == nil {
		t.Errorf("expected an error inspecting a missing capture")
	}
}

func TestExtraHighlights(t *testing.T) {
	s := DefaultSettings()
	s.Highlights = []radar.HighlightCell{{Section: 1, Ring: 1, Color: "blue"}}

	if cells := extraHighlights(s, false, 0, 1); len(cells) != 1 {
		t.Errorf("got %d cells, expected 1", len(cells))
	}

	cells := extraHighlights(s, true, 5, 7)
	if len(cells) != 8 {
		t.Fatalf("got %d cells, expected 8", len(cells))
	}
	if cells[0] != s.Highlights[0] || cells[1] != radar.DemoHighlights()[0] {
		t.Errorf("configured and demo cells out of order: %v", cells)
	}
	for _, c := range cells[3:] {
		if !c.InGrid(s.Config) {
			t.Errorf("%s: random cell outside the grid", c)
		}
	}
}

func TestProfileWrittenWhenCommandFails(t *testing.T) {
	dir := t.TempDir()
	memprofile := filepath.Join(dir, "mem.prof")

	rootCmd.SetArgs([]string{"render", "--width=-1", "--memprofile", memprofile,
		"--output", filepath.Join(dir, "radar.png")})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	defer rootCmd.SetArgs(nil)

	if err := execute(); err == nil {
		t.Fatalf("expected an error for a negative width")
	}
	if fi, err := os.Stat(memprofile); err != nil || fi.Size() == 0 {
		t.Errorf("memory profile not written after a failed command: %v", err)
	}
	if profiler != nil {
		t.Errorf("profiler still set after execute")
	}
}

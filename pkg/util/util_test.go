// pkg/util/util_test.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"strings"
	"testing"
)

func TestErrorLogger(t *testing.T) {
	var e ErrorLogger
	if e.HaveErrors() {
		t.Errorf("fresh ErrorLogger reports errors")
	}

	e.ErrorString("top-level problem")
	e.Push("config")
	e.Push("sections")
	e.ErrorString("must be at least 1 (got %d)", 0)
	e.Pop()
	if d := e.CurrentDepth(); d != 1 {
		t.Errorf("depth %d, expected 1", d)
	}
	e.Pop()

	errs := e.Errors()
	if len(errs) != 2 {
		t.Fatalf("got %d errors, expected 2: %v", len(errs), errs)
	}
	if errs[0] != "top-level problem" {
		t.Errorf("got %q", errs[0])
	}
	if errs[1] != "config / sections: must be at least 1 (got 0)" {
		t.Errorf("got %q", errs[1])
	}
	if !strings.Contains(e.String(), "\n") {
		t.Errorf("String should join errors with newlines: %q", e.String())
	}
}

func TestUnmarshalJSONErrors(t *testing.T) {
	type cell struct {
		Section int    `json:"section"`
		Color   string `json:"color"`
	}

	var c cell
	err := UnmarshalJSON([]byte("{\n  \"section\": \"three\"\n}"), &c)
	if err == nil {
		t.Fatalf("expected type error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should report the line: %v", err)
	}

	err = UnmarshalJSON([]byte("{\"section\": 3,,}"), &c)
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("expected syntax error with position, got %v", err)
	}

	if err := UnmarshalJSON([]byte(`{"section": 3, "color": "#ff0000"}`), &c); err != nil {
		t.Errorf("unexpected error: %v", err)
	} else if c.Section != 3 || c.Color != "#ff0000" {
		t.Errorf("got %+v", c)
	}
}

func TestCheckJSON(t *testing.T) {
	type cell struct {
		Section int    `json:"section"`
		Ring    int    `json:"ring,omitempty"`
		Color   string `json:"color"`
	}

	var e ErrorLogger
	CheckJSON[[]cell]([]byte(`[{"section": 3, "ring": 2, "color": "#ff0000"}]`), &e)
	if e.HaveErrors() {
		t.Errorf("unexpected errors: %s", e.String())
	}

	e = ErrorLogger{}
	CheckJSON[[]cell]([]byte(`[{"section": 3, "rnig": 2, "color": 5}]`), &e)
	errs := e.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	joined := e.String()
	if !strings.Contains(joined, `"rnig"`) {
		t.Errorf("misspelled entry not reported: %s", joined)
	}
	if !strings.Contains(joined, "[0] / color: expected a string") {
		t.Errorf("type mismatch not reported: %s", joined)
	}
}

func TestSortedMapKeys(t *testing.T) {
	keys := SortedMapKeys(map[string]int{"Stroke": 2, "Arc": 3, "Fill": 1})
	if strings.Join(keys, ",") != "Arc,Fill,Stroke" {
		t.Errorf("got %v, expected [Arc Fill Stroke]", keys)
	}
	if keys := SortedMapKeys(map[int]bool{}); len(keys) != 0 {
		t.Errorf("empty map: got %v", keys)
	}
}

func TestMapSlice(t *testing.T) {
	if MapSlice[int, int](nil, func(i int) int { return i }) != nil {
		t.Errorf("nil slice did not map to nil")
	}
	got := MapSlice([]int{1, 2, 3}, func(i int) string { return strings.Repeat("x", i) })
	if strings.Join(got, ",") != "x,xx,xxx" {
		t.Errorf("got %v", got)
	}
}

func TestProfiler(t *testing.T) {
	var p *Profiler
	if err := p.Stop(); err != nil {
		t.Errorf("nil Profiler Stop: %v", err)
	}

	dir := t.TempDir()
	p, err := StartProfiler("", dir+"/mem.prof")
	if err != nil {
		t.Fatalf("StartProfiler: %v", err)
	}
	if err := p.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := p.Stop(); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}

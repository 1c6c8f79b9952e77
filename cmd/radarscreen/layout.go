// cmd/radarscreen/layout.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"fmt"

	"github.com/HefnySco/radarscreen/pkg/math"
	"github.com/HefnySco/radarscreen/pkg/radar"
	"github.com/HefnySco/radarscreen/pkg/util"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the grid's section and ring geometry as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := LoadSettings()
		if err != nil {
			return err
		}
		degrees, _ := cmd.Flags().GetBool("degrees")

		l := radar.ComputeLayout(s.Config, radar.NewViewport(float32(s.Width), float32(s.Height)))
		b, err := json.MarshalIndent(LayoutJSON(l, degrees), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func init() {
	layoutCmd.Flags().Bool("degrees", false, "report angles in degrees rather than radians")
	rootCmd.AddCommand(layoutCmd)
}

// LayoutJSON returns the layout as a map whose keys marshal in a fixed,
// readable order.
func LayoutJSON(l radar.Layout, degrees bool) *orderedmap.OrderedMap {
	angle := func(a float32) float32 {
		if degrees {
			return math.Degrees(a)
		}
		return a
	}

	vp := orderedmap.New()
	vp.Set("width", l.Viewport.Width)
	vp.Set("height", l.Viewport.Height)
	vp.Set("center", l.Viewport.Center)
	vp.Set("outer_radius", l.Viewport.OuterRadius)

	o := orderedmap.New()
	o.Set("viewport", vp)
	o.Set("effective_angle", angle(l.Effective))
	o.Set("grid_rotation", angle(l.GridRotation))
	o.Set("ray_angles", util.MapSlice(l.RayAngles, angle))
	o.Set("ring_radii", l.RingRadii)
	o.Set("sections", util.MapSlice(l.Sections, func(s radar.SectionLayout) *orderedmap.OrderedMap {
		m := orderedmap.New()
		m.Set("section", s.Section)
		m.Set("start", angle(s.Start))
		m.Set("end", angle(s.End))
		return m
	}))
	o.Set("rings", util.MapSlice(l.Rings, func(r radar.RingLayout) *orderedmap.OrderedMap {
		m := orderedmap.New()
		m.Set("ring", r.Ring)
		m.Set("inner", r.Inner)
		m.Set("outer", r.Outer)
		return m
	}))
	return o
}

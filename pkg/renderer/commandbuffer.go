// pkg/renderer/commandbuffer.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	gomath "math"
	"slices"
	"sync"

	"github.com/HefnySco/radarscreen/pkg/math"
)

// The command buffer stores a series of drawing commands, represented by
// the following values. Each one is followed in the buffer by a number of
// command arguments, after which the next command follows.  Comments
// after each command briefly describe its arguments.
const (
	RendererClear         = iota // no args
	RendererSave                 // no args
	RendererRestore              // no args
	RendererTranslate            // 2 float32: x, y
	RendererRotate               // 1 float32: theta
	RendererBeginPath            // no args
	RendererMoveTo               // 2 float32: x, y
	RendererLineTo               // 2 float32: x, y
	RendererArc                  // 5 float32: cx, cy, r, a0, a1, then int32 ccw
	RendererClosePath            // no args
	RendererSetFillRGBA          // 4 float32: RGBA
	RendererSetStrokeRGBA        // 4 float32: RGBA
	RendererFill                 // no args
	RendererStroke               // no args
	RendererFillText             // 2 float32: x, y, int32 length in bytes, then (3+length)/4 packed bytes
	rendererNumOpcodes
)

var opcodeNames = [...]string{
	RendererClear:         "Clear",
	RendererSave:          "Save",
	RendererRestore:       "Restore",
	RendererTranslate:     "Translate",
	RendererRotate:        "Rotate",
	RendererBeginPath:     "BeginPath",
	RendererMoveTo:        "MoveTo",
	RendererLineTo:        "LineTo",
	RendererArc:           "Arc",
	RendererClosePath:     "ClosePath",
	RendererSetFillRGBA:   "SetFillRGBA",
	RendererSetStrokeRGBA: "SetStrokeRGBA",
	RendererFill:          "Fill",
	RendererStroke:        "Stroke",
	RendererFillText:      "FillText",
}

// Number of fixed arguments that follow each opcode.
var opcodeArgs = [...]int{
	RendererTranslate:     2,
	RendererRotate:        1,
	RendererMoveTo:        2,
	RendererLineTo:        2,
	RendererArc:           6,
	RendererSetFillRGBA:   4,
	RendererSetStrokeRGBA: 4,
	RendererFillText:      3,
	rendererNumOpcodes:    0,
}

func OpcodeName(op uint32) string {
	if op < rendererNumOpcodes {
		return opcodeNames[op]
	}
	return fmt.Sprintf("op%d", op)
}

// CommandBuffer records the calls made to it through the Surface
// interface in an API-agnostic form so that they can be compared, saved,
// or replayed onto another Surface later.
type CommandBuffer struct {
	Buf    []uint32
	Extent math.Extent2D
}

var _ Surface = (*CommandBuffer)(nil)

// CommandBuffers are managed using a sync.Pool so that their buf slice
// allocations persist across multiple uses.
var commandBufferPool = sync.Pool{New: func() any { return &CommandBuffer{} }}

// GetCommandBuffer returns an empty CommandBuffer for a surface of the
// given size.
func GetCommandBuffer(width, height int) *CommandBuffer {
	cb := commandBufferPool.Get().(*CommandBuffer)
	cb.Extent = math.Extent2D{P1: [2]float32{float32(width), float32(height)}}
	return cb
}

func ReturnCommandBuffer(cb *CommandBuffer) {
	cb.Reset()
	commandBufferPool.Put(cb)
}

func NewCommandBuffer(width, height int) *CommandBuffer {
	return &CommandBuffer{Extent: math.Extent2D{P1: [2]float32{float32(width), float32(height)}}}
}

// Reset resets the command buffer's length to zero so that it can be
// reused.
func (cb *CommandBuffer) Reset() {
	cb.Buf = cb.Buf[:0]
}

// growFor ensures that at least n more values can be added to the end of
// the buffer without going past its capacity.
func (cb *CommandBuffer) growFor(n int) {
	if len(cb.Buf)+n > cap(cb.Buf) {
		sz := 2 * cap(cb.Buf)
		if sz < 1024 {
			sz = 1024
		}
		if sz < len(cb.Buf)+n {
			sz = 2 * (len(cb.Buf) + n)
		}
		b := make([]uint32, len(cb.Buf), sz)
		copy(b, cb.Buf)
		cb.Buf = b
	}
}

func (cb *CommandBuffer) appendFloats(floats ...float32) {
	for _, f := range floats {
		// Convert each one to a uint32 since that's the type that is
		// actually stored...
		cb.Buf = append(cb.Buf, gomath.Float32bits(f))
	}
}

func (cb *CommandBuffer) appendInts(ints ...int) {
	for _, i := range ints {
		cb.Buf = append(cb.Buf, uint32(i))
	}
}

func (cb *CommandBuffer) Bounds() math.Extent2D {
	return cb.Extent
}

func (cb *CommandBuffer) Clear() {
	cb.appendInts(RendererClear)
}

func (cb *CommandBuffer) Save() {
	cb.appendInts(RendererSave)
}

func (cb *CommandBuffer) Restore() {
	cb.appendInts(RendererRestore)
}

func (cb *CommandBuffer) Translate(x, y float32) {
	cb.appendInts(RendererTranslate)
	cb.appendFloats(x, y)
}

func (cb *CommandBuffer) Rotate(theta float32) {
	cb.appendInts(RendererRotate)
	cb.appendFloats(theta)
}

func (cb *CommandBuffer) BeginPath() {
	cb.appendInts(RendererBeginPath)
}

func (cb *CommandBuffer) MoveTo(x, y float32) {
	cb.appendInts(RendererMoveTo)
	cb.appendFloats(x, y)
}

func (cb *CommandBuffer) LineTo(x, y float32) {
	cb.appendInts(RendererLineTo)
	cb.appendFloats(x, y)
}

func (cb *CommandBuffer) Arc(cx, cy, r, a0, a1 float32, ccw bool) {
	cb.appendInts(RendererArc)
	cb.appendFloats(cx, cy, r, a0, a1)
	if ccw {
		cb.appendInts(1)
	} else {
		cb.appendInts(0)
	}
}

func (cb *CommandBuffer) ClosePath() {
	cb.appendInts(RendererClosePath)
}

func (cb *CommandBuffer) SetFillRGBA(rgba RGBA) {
	cb.appendInts(RendererSetFillRGBA)
	cb.appendFloats(rgba.R, rgba.G, rgba.B, rgba.A)
}

func (cb *CommandBuffer) SetStrokeRGBA(rgba RGBA) {
	cb.appendInts(RendererSetStrokeRGBA)
	cb.appendFloats(rgba.R, rgba.G, rgba.B, rgba.A)
}

func (cb *CommandBuffer) Fill() {
	cb.appendInts(RendererFill)
}

func (cb *CommandBuffer) Stroke() {
	cb.appendInts(RendererStroke)
}

// FillText stores the text's bytes directly in the command buffer, packed
// four to a uint32.
func (cb *CommandBuffer) FillText(text string, x, y float32) {
	cb.appendInts(RendererFillText)
	cb.appendFloats(x, y)
	cb.appendInts(len(text))

	nints := (len(text) + 3) / 4
	cb.growFor(nints)
	for i := 0; i < nints; i++ {
		var v uint32
		for j := 0; j < 4 && 4*i+j < len(text); j++ {
			v |= uint32(text[4*i+j]) << (8 * j)
		}
		cb.Buf = append(cb.Buf, v)
	}
}

func unpackText(buf []uint32, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(buf[i/4] >> (8 * (i % 4)))
	}
	return string(b)
}

// Walk calls fn for each command in the buffer with the command's opcode
// and its arguments. It returns an error if the buffer is malformed or if
// fn returns an error.
func (cb *CommandBuffer) Walk(fn func(op uint32, args []uint32) error) error {
	for i := 0; i < len(cb.Buf); {
		op := cb.Buf[i]
		if op >= rendererNumOpcodes {
			return fmt.Errorf("%d: unknown opcode at offset %d", op, i)
		}
		n := opcodeArgs[op]
		if i+1+n > len(cb.Buf) {
			return fmt.Errorf("%s: truncated arguments at offset %d", OpcodeName(op), i)
		}
		if op == RendererFillText {
			n += (int(cb.Buf[i+3]) + 3) / 4
			if i+1+n > len(cb.Buf) {
				return fmt.Errorf("%s: truncated text at offset %d", OpcodeName(op), i)
			}
		}
		if err := fn(op, cb.Buf[i+1:i+1+n]); err != nil {
			return err
		}
		i += 1 + n
	}
	return nil
}

// Replay issues the recorded commands to the given Surface.
func (cb *CommandBuffer) Replay(s Surface) error {
	return cb.Walk(func(op uint32, args []uint32) error {
		f := func(i int) float32 { return gomath.Float32frombits(args[i]) }
		rgba := func() RGBA { return RGBA{R: f(0), G: f(1), B: f(2), A: f(3)} }

		switch op {
		case RendererClear:
			s.Clear()
		case RendererSave:
			s.Save()
		case RendererRestore:
			s.Restore()
		case RendererTranslate:
			s.Translate(f(0), f(1))
		case RendererRotate:
			s.Rotate(f(0))
		case RendererBeginPath:
			s.BeginPath()
		case RendererMoveTo:
			s.MoveTo(f(0), f(1))
		case RendererLineTo:
			s.LineTo(f(0), f(1))
		case RendererArc:
			s.Arc(f(0), f(1), f(2), f(3), f(4), args[5] != 0)
		case RendererClosePath:
			s.ClosePath()
		case RendererSetFillRGBA:
			s.SetFillRGBA(rgba())
		case RendererSetStrokeRGBA:
			s.SetStrokeRGBA(rgba())
		case RendererFill:
			s.Fill()
		case RendererStroke:
			s.Stroke()
		case RendererFillText:
			s.FillText(unpackText(args[3:], int(args[2])), f(0), f(1))
		}
		return nil
	})
}

// Equal reports whether two command buffers hold exactly the same
// commands for surfaces of the same size.
func (cb *CommandBuffer) Equal(other *CommandBuffer) bool {
	return cb.Extent == other.Extent && slices.Equal(cb.Buf, other.Buf)
}

// Summary returns the number of times each opcode appears in the buffer,
// indexed by opcode name.
func (cb *CommandBuffer) Summary() (map[string]int, error) {
	counts := make(map[string]int)
	err := cb.Walk(func(op uint32, args []uint32) error {
		counts[OpcodeName(op)]++
		return nil
	})
	return counts, err
}

// Texts returns the strings passed to FillText, in order.
func (cb *CommandBuffer) Texts() []string {
	var texts []string
	cb.Walk(func(op uint32, args []uint32) error {
		if op == RendererFillText {
			texts = append(texts, unpackText(args[3:], int(args[2])))
		}
		return nil
	})
	return texts
}

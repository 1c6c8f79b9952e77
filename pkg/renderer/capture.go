// pkg/renderer/capture.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// CaptureVersion is bumped whenever the opcode encoding changes.
const CaptureVersion = 1

// capture is the on-disk representation of a recorded CommandBuffer:
// msgpack-encoded and then compressed with zstd.
type capture struct {
	Version int
	Width   float32
	Height  float32
	Buf     []uint32
}

// WriteCapture writes the commands recorded in cb to w.
func WriteCapture(w io.Writer, cb *CommandBuffer) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	defer zw.Close()

	c := capture{
		Version: CaptureVersion,
		Width:   cb.Extent.Width(),
		Height:  cb.Extent.Height(),
		Buf:     cb.Buf,
	}
	if err := msgpack.NewEncoder(zw).Encode(c); err != nil {
		return fmt.Errorf("failed to encode capture: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}
	return nil
}

// ReadCapture reads a capture written by WriteCapture and returns a
// CommandBuffer holding its commands. The commands are validated so that
// the returned buffer can be replayed safely.
func ReadCapture(r io.Reader) (*CommandBuffer, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var c capture
	if err := msgpack.NewDecoder(zr).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode capture: %w", err)
	}
	if c.Version != CaptureVersion {
		return nil, fmt.Errorf("capture version %d: expected version %d", c.Version, CaptureVersion)
	}

	cb := NewCommandBuffer(int(c.Width), int(c.Height))
	cb.Buf = c.Buf
	if err := cb.Walk(func(uint32, []uint32) error { return nil }); err != nil {
		return nil, fmt.Errorf("invalid capture: %w", err)
	}
	return cb, nil
}

// pkg/util/prof.go
// Copyright(c) 2025 radarscreen contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"fmt"
	"os"
	"runtime/pprof"
)

// Profiler collects CPU and heap profiles over the lifetime of a command.
type Profiler struct {
	cpu, mem *os.File
}

// StartProfiler starts CPU profiling to the file cpu and arranges for a
// heap profile to be written to mem when Stop is called; either may be
// empty to skip that profile.
func StartProfiler(cpu, mem string) (*Profiler, error) {
	p := &Profiler{}

	var err error
	if cpu != "" {
		if p.cpu, err = os.Create(cpu); err != nil {
			return nil, fmt.Errorf("%s: unable to create CPU profile file: %w", cpu, err)
		} else if err = pprof.StartCPUProfile(p.cpu); err != nil {
			p.cpu.Close()
			return nil, fmt.Errorf("unable to start CPU profile: %w", err)
		}
	}

	if mem != "" {
		if p.mem, err = os.Create(mem); err != nil {
			p.Stop()
			return nil, fmt.Errorf("%s: unable to create memory profile file: %w", mem, err)
		}
	}

	return p, nil
}

// Stop finishes any profiles that are being collected. It is safe to call
// on a nil *Profiler and to call more than once.
func (p *Profiler) Stop() error {
	if p == nil {
		return nil
	}

	var err error
	if p.cpu != nil {
		pprof.StopCPUProfile()
		err = p.cpu.Close()
		p.cpu = nil
	}
	if p.mem != nil {
		if werr := pprof.WriteHeapProfile(p.mem); werr != nil {
			err = fmt.Errorf("unable to write memory profile file: %w", werr)
		}
		p.mem.Close()
		p.mem = nil
	}
	return err
}

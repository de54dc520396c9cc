// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
)

// SnapshotVersion is the current version of the Snapshot layout
const SnapshotVersion = 1

// Snapshot holds the persisted state by name, independent of positions in the flat arrays
type Snapshot struct {
	Version int                  `json:"version"`         // layout version
	Time    float64              `json:"time"`            // time (h)
	Step    int                  `json:"step"`            // step number
	Vars    map[string]float64   `json:"vars"`            // persisted variables (final values)
	Modes   map[string][]float64 `json:"modes,omitempty"` // non-zero blocks of diffusion modes
}

// modeName returns the name of a block of modes in snapshots
func modeName(s System, p Population) string {
	return s.String() + "/" + p.String()
}

// Snapshot collects the persisted variables (and optionally the modes) of the frame
func (o *Frame) Snapshot(withModes bool) *Snapshot {
	snap := &Snapshot{
		Version: SnapshotVersion,
		Time:    o.Hist.Time,
		Step:    o.Hist.Step,
		Vars:    make(map[string]float64),
	}
	for k := Key(0); k < NumKeys; k++ {
		if registry[k].index >= 0 {
			snap.Vars[k.Name()] = o.Vars.Final(k)
		}
	}
	if !withModes {
		return snap
	}
	snap.Modes = make(map[string][]float64)
	for s := System(0); s < NumSystems; s++ {
		for p := Population(0); p < NumPopulations; p++ {
			blk := o.Modes.Block(s, p)
			for _, v := range blk {
				if v != 0 {
					snap.Modes[modeName(s, p)] = append([]float64{}, blk...)
					break
				}
			}
		}
	}
	return snap
}

// Restore resets the frame's variables and modes from the snapshot
func (o *Snapshot) Restore(f *Frame) (err error) {
	if o.Version != SnapshotVersion {
		return chk.Err("cannot restore snapshot with version %d; version %d is required", o.Version, SnapshotVersion)
	}
	for name, v := range o.Vars {
		k, ok := KeyByName(name)
		if !ok {
			return chk.Err("snapshot has unknown variable %q", name)
		}
		f.Vars.At(k).Reset(v)
	}
	for s := System(0); s < NumSystems; s++ {
		for p := Population(0); p < NumPopulations; p++ {
			blk := f.Modes.Block(s, p)
			vals, ok := o.Modes[modeName(s, p)]
			if !ok {
				continue
			}
			if len(vals) != NumModes {
				return chk.Err("snapshot block %q has %d modes; %d are required", modeName(s, p), len(vals), NumModes)
			}
			copy(blk, vals)
		}
	}
	f.Hist.Time, f.Hist.Step = o.Time, o.Step
	return
}

// Encode returns the JSON representation of the snapshot
func (o *Snapshot) Encode() ([]byte, error) {
	return json.Marshal(o)
}

// DecodeSnapshot parses a JSON snapshot
func DecodeSnapshot(b []byte) (o *Snapshot, err error) {
	o = new(Snapshot)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot decode snapshot: %v", err)
	}
	if o.Version != SnapshotVersion {
		return nil, chk.Err("cannot decode snapshot with version %d; version %d is required", o.Version, SnapshotVersion)
	}
	return
}

// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

// Stim describes one square pulse of injected current.  A new injection
// replaces any pending or active pulse outright -- overlapping pulses are
// not summed, the new pulse wins.
type Stim struct {

	// injected current while the pulse is active
	Amp float32 `def:"10" desc:"injection amplitude (µA/cm²)"`

	// pulse duration in simulated time
	Dur float32 `def:"1" min:"0" desc:"injection duration (msec)"`

	// simulated time at which the current pulse started
	Onset float64 `inactive:"+" desc:"simulated onset time of the pulse (msec)"`

	// simulated time at which the pulse ends = Onset + Dur
	End float64 `inactive:"+" desc:"simulated end time of the pulse (msec)"`
}

// Defaults sets default values.  Onset and End stay zero, so no current
// flows until the first Set.
func (st *Stim) Defaults() {
	st.Amp = 10
	st.Dur = 1
}

// Set starts a new pulse at simulated time now, replacing any active one.
func (st *Stim) Set(amp, dur float32, now float64) {
	if dur < 0 {
		dur = 0
	}
	st.Amp = amp
	st.Dur = dur
	st.Onset = now
	st.End = now + float64(dur)
}

// Current returns the injected current at simulated time t.
func (st *Stim) Current(t float64) float32 {
	if t < st.End {
		return st.Amp
	}
	return 0
}

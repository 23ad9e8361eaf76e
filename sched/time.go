// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

// sched.Time contains the simulation clock and the step-size / cadence
// parameters that tie integration steps to scheduler ticks.
type Time struct {

	// accumulated simulated time, in msec -- advances by exactly DtMsec
	// per integration step and never decreases; reset only by Reset
	Msec float64 `inactive:"+" desc:"accumulated simulated time (msec)"`

	// total number of integration steps taken since Reset
	Step int64 `inactive:"+" desc:"total integration steps taken"`

	// integration step size -- trades numerical accuracy for throughput
	DtMsec float32 `def:"0.025" desc:"integration step size (msec)"`

	// wall-clock period of the host timer that calls Tick
	TickMsec float32 `def:"20" desc:"wall-clock interval between scheduler ticks (msec)"`

	// decimation factor: record every nth integration step
	PlotSamp int `def:"10" desc:"record every nth integration step"`

	// number of integration steps per tick = floor(TickMsec / DtMsec),
	// computed by Update
	StepsPerTick int `inactive:"+" desc:"integration steps per tick"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.DtMsec = 0.025
	tm.TickMsec = 20
	tm.PlotSamp = 10
	tm.Update()
}

// Update recomputes StepsPerTick -- call after changing DtMsec or TickMsec
func (tm *Time) Update() {
	tm.StepsPerTick = int(tm.TickMsec / tm.DtMsec)
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Msec = 0
	tm.Step = 0
	if tm.StepsPerTick == 0 {
		tm.Defaults()
	}
}

// StepInc increments the clock by one integration step
func (tm *Time) StepInc() {
	tm.Step++
	tm.Msec += float64(tm.DtMsec)
}

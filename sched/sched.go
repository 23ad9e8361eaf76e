// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"fmt"
	"sync"

	"github.com/emer/emergent/v2/timer"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/hhsim/hh"
	"github.com/goki/ki/kit"
)

// RunState is the scheduler state machine: it starts Running, Toggle /
// Pause / Resume flip it, and the steady-state detector can pause it.
// There is no terminal state -- the scheduler runs until the host ends.
type RunState int32

const (
	// Running: ticks fire, simulated time advances
	Running RunState = iota

	// Paused: ticks are no-ops, simulated time is frozen
	Paused

	RunStateN
)

//go:generate stringer -type=RunState

var KiT_RunState = kit.Enums.AddEnum(RunStateN, kit.NotBitFlag, nil)

// Scheduler owns the neuron model, the simulation clock, the stimulus,
// and the recording buffer, and advances them in fixed bursts from a
// host-owned periodic timer calling Tick.  All exported methods lock a
// shared mutex, so ticks cannot overlap and control operations are safe
// from any goroutine; pausing takes effect at the next tick boundary.
type Scheduler struct {

	// membrane and channel parameters
	Params hh.Params `view:"inline" desc:"Hodgkin–Huxley membrane and channel parameters"`

	// the neuron state being advanced
	Neuron hh.Neuron `view:"inline" desc:"neuron state variables"`

	// simulation clock and step / tick / decimation settings
	Time Time `view:"inline" desc:"simulation clock and timing parameters"`

	// current injection pulse
	Stim Stim `view:"inline" desc:"injected current pulse"`

	// current run state
	State RunState `inactive:"+" desc:"current run state"`

	// when set, Tick pauses the run once the membrane potential has been
	// steady over the trailing SteadyWinMsec window; cleared on pause or Resume
	PauseWhenSteady bool `desc:"auto-pause once the membrane potential is steady"`

	// carried for the display collaborator: whether the plot window should
	// track the advancing simulated time
	AutoZoom bool `desc:"display should keep the plot window tracking current time"`

	// trailing window of simulated time over which steadiness is judged
	SteadyWinMsec float32 `def:"20" desc:"steady-state lookback window (msec of simulated time)"`

	// maximum Vm variation over the window that still counts as steady
	SteadyTolMv float32 `def:"1" desc:"steady-state tolerance for max-min of Vm (mV)"`

	// how much simulated time the recording buffer retains -- sets the
	// ring capacity together with DtMsec and PlotSamp
	MaxRecordMsec float32 `def:"50000" desc:"simulated time retained in the recording buffer (msec)"`

	// decimated recording of the run, for plotting
	Buf *RecordBuf `view:"no-inline" desc:"recording buffer"`

	// wall-clock time spent inside tick bursts, for throughput reporting
	TickTimer timer.Time `view:"-"`

	// guards all state against overlapping ticks / control calls
	Mu sync.Mutex `view:"-"`
}

// New returns a new Scheduler with default parameters, at the resting
// state, Running.
func New() *Scheduler {
	sc := &Scheduler{}
	sc.Defaults()
	sc.Init()
	return sc
}

// Defaults sets default parameters.  Does not reset run state -- see Init.
func (sc *Scheduler) Defaults() {
	sc.Params.Defaults()
	sc.Time.Defaults()
	sc.Stim.Defaults()
	sc.SteadyWinMsec = 20
	sc.SteadyTolMv = 1
	sc.MaxRecordMsec = 50000
	sc.AutoZoom = true
}

// Init restarts the run: clock to zero, neuron to rest, stimulus off,
// recording buffer cleared (and sized to current timing), Running.
func (sc *Scheduler) Init() {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	sc.Time.Reset()
	sc.Neuron.Init()
	sc.Stim.Onset = 0
	sc.Stim.End = 0 // no pulse pending; Amp and Dur settings are kept
	sc.sizeBuf()
	sc.State = Running
	sc.PauseWhenSteady = false
	sc.TickTimer.Reset()
}

// sizeBuf allocates or resizes the ring buffer from MaxRecordMsec and the
// current timing.  Caller must hold Mu.
func (sc *Scheduler) sizeBuf() {
	nc := int(sc.MaxRecordMsec / (sc.Time.DtMsec * float32(sc.Time.PlotSamp)))
	if sc.Buf == nil || sc.Buf.Cap != nc {
		sc.Buf = NewRecordBuf(nc)
	} else {
		sc.Buf.Reset()
	}
}

// SetTiming reconfigures the step size, tick interval, and plot
// decimation, rejecting configurations that would yield zero steps per
// tick.  The recording buffer is resized (and cleared) to keep retaining
// MaxRecordMsec of simulated time.
func (sc *Scheduler) SetTiming(dtMsec, tickMsec float32, plotSamp int) error {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	if dtMsec <= 0 {
		return fmt.Errorf("sched.SetTiming: DtMsec must be > 0, got %g", dtMsec)
	}
	if tickMsec < dtMsec {
		return fmt.Errorf("sched.SetTiming: TickMsec %g < DtMsec %g yields zero steps per tick", tickMsec, dtMsec)
	}
	if plotSamp < 1 {
		return fmt.Errorf("sched.SetTiming: PlotSamp must be >= 1, got %d", plotSamp)
	}
	sc.Time.DtMsec = dtMsec
	sc.Time.TickMsec = tickMsec
	sc.Time.PlotSamp = plotSamp
	sc.Time.Update()
	sc.sizeBuf()
	return nil
}

// Tick advances the simulation by one burst of StepsPerTick integration
// steps.  A no-op while Paused.  The burst is synchronous: the buffer and
// neuron state are consistent when it returns.  Ticks the host skipped
// are not caught up: every tick advances the same amount of simulated time.
func (sc *Scheduler) Tick() {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	if sc.State != Running {
		return
	}
	sc.TickTimer.Start()
	n := sc.Time.StepsPerTick
	for i := 0; i < n; i++ {
		iExt := sc.Stim.Current(sc.Time.Msec)
		sc.Params.StepEuler(&sc.Neuron, sc.Time.DtMsec, iExt)
		sc.Time.StepInc()
		if sc.Time.Step%int64(sc.Time.PlotSamp) == 0 {
			sc.Buf.Add(Sample{T: sc.Time.Msec, Vm: sc.Neuron.Vm, M: sc.Neuron.M, H: sc.Neuron.H, N: sc.Neuron.N})
		}
	}
	sc.TickTimer.Stop()
	if sc.PauseWhenSteady {
		sc.checkSteady()
	}
}

// SteadyWinSamps returns the steady-state lookback window in recorded
// samples, derived from SteadyWinMsec, DtMsec, and PlotSamp.
func (sc *Scheduler) SteadyWinSamps() int {
	return int(sc.SteadyWinMsec / (sc.Time.DtMsec * float32(sc.Time.PlotSamp)))
}

// checkSteady pauses the run once the recorded Vm has varied by less
// than SteadyTolMv over the trailing SteadyWinMsec of simulated time.
// Caller must hold Mu.
func (sc *Scheduler) checkSteady() {
	win := sc.SteadyWinSamps()
	if win <= 0 || sc.Buf.Len() < win {
		return
	}
	vr := sc.Buf.VmRange(win)
	if vr.Range() < sc.SteadyTolMv {
		sc.State = Paused
		sc.PauseWhenSteady = false
	}
}

// InjectCurrent starts a current pulse of the given amplitude (µA/cm²)
// and duration (msec) at the current simulated time, replacing any
// pending or active pulse.
func (sc *Scheduler) InjectCurrent(amp, durMsec float32) {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	sc.Stim.Set(amp, durMsec, sc.Time.Msec)
}

// InjectAndPause injects as InjectCurrent, then arms the steady-state
// detector so the run pauses automatically once the response has settled.
func (sc *Scheduler) InjectAndPause(amp, durMsec float32) {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	sc.Stim.Set(amp, durMsec, sc.Time.Msec)
	sc.PauseWhenSteady = true
}

// Pause freezes simulated time before the next tick fires.
func (sc *Scheduler) Pause() {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	sc.State = Paused
}

// Resume continues a paused run, disarming the steady-state detector.
func (sc *Scheduler) Resume() {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	sc.State = Running
	sc.PauseWhenSteady = false
}

// Toggle flips between Running and Paused.
func (sc *Scheduler) Toggle() {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	if sc.State == Running {
		sc.State = Paused
	} else {
		sc.State = Running
		sc.PauseWhenSteady = false
	}
}

// IsPaused reports whether the scheduler is paused.
func (sc *Scheduler) IsPaused() bool {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	return sc.State == Paused
}

// Snapshot returns the current state (Vm, gates, simulated time) as a
// read-only sample.
func (sc *Scheduler) Snapshot() Sample {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	return Sample{T: sc.Time.Msec, Vm: sc.Neuron.Vm, M: sc.Neuron.M, H: sc.Neuron.H, N: sc.Neuron.N}
}

// Samples returns a copy of the recording buffer in time order, safe for
// a display running on another goroutine.
func (sc *Scheduler) Samples() []Sample {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	return sc.Buf.Samples()
}

// WriteTable copies the recording buffer into the given table, which
// must have been configured by RecordBuf.ConfigTable, under the lock.
func (sc *Scheduler) WriteTable(dt *etable.Table) {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	sc.Buf.WriteTable(dt)
}

// SetParam sets a named membrane parameter (see hh.ParamRanges), safely
// between steps.
func (sc *Scheduler) SetParam(name string, val float32) error {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	return sc.Params.SetParam(name, val)
}

// ResetParams restores the classic default parameters.
func (sc *Scheduler) ResetParams() {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	sc.Params.Defaults()
}

// Finite reports whether the neuron state is still finite -- hosts can
// poll this after ticks to detect numerical divergence.
func (sc *Scheduler) Finite() bool {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	return sc.Neuron.Finite()
}

// AvgTickMsec returns the average wall-clock cost of a tick burst in
// msec, for throughput / frame-rate reporting.
func (sc *Scheduler) AvgTickMsec() float64 {
	sc.Mu.Lock()
	defer sc.Mu.Unlock()
	if sc.TickTimer.N == 0 {
		return 0
	}
	return 1000 * sc.TickTimer.TotalSecs() / float64(sc.TickTimer.N)
}

// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import "github.com/chewxy/math32"

// VmRest is the resting membrane potential (mV) that Init starts from.
const VmRest = float32(-65)

// hh.Neuron holds the four Hodgkin–Huxley state variables, plus the net
// membrane current from the last step for display.  Single-owner mutable
// state: one host advances it via Params.StepEuler.
type Neuron struct {

	// membrane potential (mV)
	Vm float32 `desc:"membrane potential (mV)"`

	// sodium channel activation gate, open probability in [0..1]
	M float32 `desc:"sodium activation gate m -- opens rapidly with depolarization"`

	// sodium channel inactivation gate, open probability in [0..1]
	H float32 `desc:"sodium inactivation gate h -- closes slowly with depolarization"`

	// potassium channel activation gate, open probability in [0..1]
	N float32 `desc:"potassium activation gate n -- opens slowly with depolarization, repolarizes the membrane"`

	// net membrane current from the last step
	Inet float32 `inactive:"+" desc:"net membrane current from last step (µA/cm²) -- drives the Vm update"`
}

// Init sets the state to the resting potential, with each gating variable
// at its voltage-dependent equilibrium value alpha/(alpha+beta) at rest.
func (nr *Neuron) Init() {
	nr.Vm = VmRest
	nr.M = EqGate(AlphaM(nr.Vm), BetaM(nr.Vm))
	nr.H = EqGate(AlphaH(nr.Vm), BetaH(nr.Vm))
	nr.N = EqGate(AlphaN(nr.Vm), BetaN(nr.Vm))
	nr.Inet = 0
}

// Finite reports whether all state variables are finite (no NaN or Inf).
// Explicit Euler diverges silently under degenerate step sizes or extreme
// parameters, so hosts that care should poll this after stepping.
func (nr *Neuron) Finite() bool {
	for _, v := range [...]float32{nr.Vm, nr.M, nr.H, nr.N} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

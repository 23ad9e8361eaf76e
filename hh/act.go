// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

///////////////////////////////////////////////////////////////////////
//  act.go contains the forward-Euler state update

// StepEuler advances the neuron state by one explicit forward-Euler step
// of dt msec, with external stimulus current iExt (µA/cm²).
// Update order matters and follows the standard formulation:
// gate derivatives are computed from the current state, the gates are
// updated, and then the ionic currents use the updated gates but the
// pre-update Vm.  Gating variables are not clamped, so they can overshoot
// [0..1] slightly under large steps or currents.
func (pr *Params) StepEuler(nr *Neuron, dt, iExt float32) {
	dm := AlphaM(nr.Vm)*(1-nr.M) - BetaM(nr.Vm)*nr.M
	dh := AlphaH(nr.Vm)*(1-nr.H) - BetaH(nr.Vm)*nr.H
	dn := AlphaN(nr.Vm)*(1-nr.N) - BetaN(nr.Vm)*nr.N

	nr.M += dt * dm
	nr.H += dt * dh
	nr.N += dt * dn

	iNa := pr.Gbar.Na * (nr.M * nr.M * nr.M) * nr.H * (nr.Vm - pr.Erev.Na)
	iK := pr.Gbar.K * (nr.N * nr.N * nr.N * nr.N) * (nr.Vm - pr.Erev.K)
	iL := pr.Gbar.L * (nr.Vm - pr.Erev.L)

	nr.Inet = iExt - iNa - iK - iL
	nr.Vm += dt * nr.Inet / pr.Cm
}

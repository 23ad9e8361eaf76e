// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"testing"

	"github.com/chewxy/math32"
)

// gateTol is the tolerance for comparing gating variables vs. their
// analytic equilibrium values
const gateTol = float32(1.0e-2)

func TestRestingState(t *testing.T) {
	pr := Params{}
	pr.Defaults()
	nr := Neuron{}
	nr.Init()

	dt := float32(0.025)
	nsteps := int(50 / dt) // 50 msec
	for i := 0; i < nsteps; i++ {
		pr.StepEuler(&nr, dt, 0)
	}
	if !nr.Finite() {
		t.Fatalf("state not finite at rest: %+v\n", nr)
	}
	difvm := math32.Abs(nr.Vm - VmRest)
	if difvm > 0.5 {
		t.Errorf("Vm err: vm: %v, rest: %v, dif: %v\n", nr.Vm, VmRest, difvm)
	}
	eqm := EqGate(AlphaM(VmRest), BetaM(VmRest))
	eqh := EqGate(AlphaH(VmRest), BetaH(VmRest))
	eqn := EqGate(AlphaN(VmRest), BetaN(VmRest))
	if difm := math32.Abs(nr.M - eqm); difm > gateTol {
		t.Errorf("m err: m: %v, eq: %v, dif: %v\n", nr.M, eqm, difm)
	}
	if difh := math32.Abs(nr.H - eqh); difh > gateTol {
		t.Errorf("h err: h: %v, eq: %v, dif: %v\n", nr.H, eqh, difh)
	}
	if difn := math32.Abs(nr.N - eqn); difn > gateTol {
		t.Errorf("n err: n: %v, eq: %v, dif: %v\n", nr.N, eqn, difn)
	}
}

func TestGateBounds(t *testing.T) {
	pr := Params{}
	pr.Defaults()
	nr := Neuron{}
	nr.Init()

	// gates are allowed to overshoot [0..1] slightly via Euler error
	lo, hi := float32(-0.01), float32(1.01)
	dt := float32(0.025)
	nsteps := int(100 / dt) // 100 msec
	for i := 0; i < nsteps; i++ {
		pr.StepEuler(&nr, dt, 50)
		for _, g := range [...]float32{nr.M, nr.H, nr.N} {
			if g < lo || g > hi {
				t.Fatalf("gate out of bounds at step %d: m: %v, h: %v, n: %v\n", i, nr.M, nr.H, nr.N)
			}
		}
	}
}

func TestActionPotential(t *testing.T) {
	pr := Params{}
	pr.Defaults()
	nr := Neuron{}
	nr.Init()

	amp, dur := float32(10), float32(1)
	dt := float32(0.01)
	nsteps := int(5 / dt) // spike expected within first 5 msec
	maxVm := nr.Vm
	tcur := float32(0)
	for i := 0; i < nsteps; i++ {
		iExt := float32(0)
		if tcur < dur {
			iExt = amp
		}
		pr.StepEuler(&nr, dt, iExt)
		tcur += dt
		if nr.Vm > maxVm {
			maxVm = nr.Vm
		}
	}
	if maxVm <= 0 {
		t.Errorf("no action potential: max Vm = %v, want > 0\n", maxVm)
	}
	if !nr.Finite() {
		t.Errorf("state not finite after spike: %+v\n", nr)
	}
}

func TestRateSingularities(t *testing.T) {
	if an := AlphaN(-55); an != 0.1 {
		t.Errorf("AlphaN(-55): %v, want exactly 0.1\n", an)
	}
	if am := AlphaM(-40); am != 1 {
		t.Errorf("AlphaM(-40): %v, want exactly 1\n", am)
	}
	// continuous across the singularity
	if an := AlphaN(-55.001); math32.Abs(an-0.1) > 1.0e-3 {
		t.Errorf("AlphaN near -55 not continuous: %v\n", an)
	}
	if am := AlphaM(-40.001); math32.Abs(am-1) > 1.0e-3 {
		t.Errorf("AlphaM near -40 not continuous: %v\n", am)
	}
}

func TestRateOverflow(t *testing.T) {
	rates := []struct {
		nm string
		fn func(float32) float32
	}{
		{"AlphaM", AlphaM}, {"BetaM", BetaM},
		{"AlphaH", AlphaH}, {"BetaH", BetaH},
		{"AlphaN", AlphaN}, {"BetaN", BetaN},
	}
	for _, v := range [...]float32{1.0e6, -1.0e6} {
		for _, r := range rates {
			got := r.fn(v)
			if math32.IsNaN(got) || math32.IsInf(got, 0) {
				t.Errorf("%s(%v) not finite: %v\n", r.nm, v, got)
			}
		}
	}
}

func TestSetParam(t *testing.T) {
	pr := Params{}
	pr.Defaults()

	if err := pr.SetParam("g_Ca", 1); err == nil {
		t.Errorf("expected error for unknown parameter name\n")
	}
	if _, err := pr.Param("g_Ca"); err == nil {
		t.Errorf("expected error for unknown parameter name\n")
	}

	// out-of-range values clip to the documented range
	if err := pr.SetParam("g_Na", 1000); err != nil {
		t.Fatal(err)
	}
	if pr.Gbar.Na != 200 {
		t.Errorf("g_Na: %v, want clipped to 200\n", pr.Gbar.Na)
	}
	if err := pr.SetParam("E_K", -200); err != nil {
		t.Fatal(err)
	}
	if pr.Erev.K != -100 {
		t.Errorf("E_K: %v, want clipped to -100\n", pr.Erev.K)
	}

	for _, nm := range ParamNames {
		rng := ParamRanges[nm]
		mid := 0.5 * (rng.Min + rng.Max)
		if err := pr.SetParam(nm, mid); err != nil {
			t.Fatal(err)
		}
		got, err := pr.Param(nm)
		if err != nil {
			t.Fatal(err)
		}
		if got != mid {
			t.Errorf("%s: %v, want %v\n", nm, got, mid)
		}
	}

	pr.Defaults()
	if pr.Cm != 1 || pr.Gbar.Na != 120 || pr.Erev.L != -54.387 {
		t.Errorf("Defaults did not restore classic values: %+v\n", pr)
	}
}

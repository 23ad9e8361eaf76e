// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import (
	"fmt"

	"github.com/emer/etable/v2/minmax"
	"github.com/emer/hhsim/chans"
)

// Params are the Hodgkin–Huxley membrane and channel parameters.
// Defaults are the classic squid-axon values.  Immutable during a step;
// the host sets them between steps, by name via SetParam or directly.
type Params struct {
	Cm   float32     `def:"1" min:"0.1" max:"5" desc:"membrane capacitance (µF/cm²)"`
	Gbar chans.Chans `view:"inline" desc:"maximal conductances (mS/cm²) -- defaults: Na=120, K=36, L=0.3"`
	Erev chans.Chans `view:"inline" desc:"reversal potentials (mV) -- defaults: Na=50, K=-77, L=-54.387"`
}

func (pr *Params) Defaults() {
	pr.Cm = 1
	pr.Gbar.SetAll(120, 36, 0.3)
	pr.Erev.SetAll(50, -77, -54.387)
}

// ParamNames are the settable parameters, under their standard
// Hodgkin–Huxley names, in conventional order.
var ParamNames = []string{"C_m", "g_Na", "g_K", "g_L", "E_Na", "E_K", "E_L"}

// ParamRanges are the documented valid ranges for each settable parameter,
// keyed by standard name.  SetParam clips into these; a parameter-editing
// display should use them as its spinbox bounds.
var ParamRanges = map[string]minmax.F32{
	"C_m":  {Min: 0.1, Max: 5},
	"g_Na": {Min: 50, Max: 200},
	"g_K":  {Min: 10, Max: 100},
	"g_L":  {Min: 0.1, Max: 2},
	"E_Na": {Min: 40, Max: 70},
	"E_K":  {Min: -100, Max: -50},
	"E_L":  {Min: -70, Max: -30},
}

// SetParam sets the named parameter, clipping the value into its
// documented range.  Unknown names are an error.
func (pr *Params) SetParam(name string, val float32) error {
	rng, ok := ParamRanges[name]
	if !ok {
		return fmt.Errorf("hh.Params.SetParam: unknown parameter name: %s", name)
	}
	val = rng.ClipVal(val)
	switch name {
	case "C_m":
		pr.Cm = val
	case "g_Na":
		pr.Gbar.Na = val
	case "g_K":
		pr.Gbar.K = val
	case "g_L":
		pr.Gbar.L = val
	case "E_Na":
		pr.Erev.Na = val
	case "E_K":
		pr.Erev.K = val
	case "E_L":
		pr.Erev.L = val
	}
	return nil
}

// Param returns the named parameter value.  Unknown names are an error.
func (pr *Params) Param(name string) (float32, error) {
	switch name {
	case "C_m":
		return pr.Cm, nil
	case "g_Na":
		return pr.Gbar.Na, nil
	case "g_K":
		return pr.Gbar.K, nil
	case "g_L":
		return pr.Gbar.L, nil
	case "E_Na":
		return pr.Erev.Na, nil
	case "E_K":
		return pr.Erev.K, nil
	case "E_L":
		return pr.Erev.L, nil
	}
	return 0, fmt.Errorf("hh.Params.Param: unknown parameter name: %s", name)
}

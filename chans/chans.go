// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the per-channel values for the three ionic
currents of the Hodgkin–Huxley squid-axon model: voltage-gated sodium,
delayed-rectifier potassium, and ohmic leak.
The same value triple is used both for maximal conductances (mS/cm²)
and for reversal potentials (mV).
*/
package chans

// Chans holds one value per Hodgkin–Huxley ion channel
type Chans struct {
	Na float32 `desc:"voltage-gated sodium channels, gated by the m (activation) and h (inactivation) variables"`
	K  float32 `desc:"delayed-rectifier potassium channels, gated by the n activation variable"`
	L  float32 `desc:"constant ohmic leak channels -- together with the gated channels determines the resting potential"`
}

// SetAll sets all the values
func (ch *Chans) SetAll(na, k, l float32) {
	ch.Na, ch.K, ch.L = na, k, l
}

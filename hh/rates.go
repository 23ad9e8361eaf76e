// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hh

import "github.com/chewxy/math32"

///////////////////////////////////////////////////////////////////////
//  rates.go contains the voltage-dependent channel gating rate functions

// ExpClip is the range that exponent arguments are clipped to in SafeExp.
// e^50 is still comfortably within float32 range, so the rate functions
// saturate instead of overflowing at extreme voltages.
const ExpClip = float32(50)

// SingTol is the voltage tolerance around the removable singularities of
// AlphaM and AlphaN, where the 0/0 form is replaced by its limit value.
const SingTol = float32(1.0e-6)

// SafeExp returns e^x with x clipped to [-ExpClip, ExpClip].
// Every rate function that exponentiates must go through this, so that
// all of them stay finite for any finite voltage.
func SafeExp(x float32) float32 {
	if x > ExpClip {
		x = ExpClip
	} else if x < -ExpClip {
		x = -ExpClip
	}
	return math32.Exp(x)
}

// AlphaM is the opening rate (1/msec) of the sodium activation gate m,
// as a function of membrane potential in mV.
// The removable singularity at v = -40 returns the limit value 1.
func AlphaM(v float32) float32 {
	if math32.Abs(v+40) < SingTol {
		return 1
	}
	return 0.1 * (v + 40) / (1 - SafeExp(-(v+40)/10))
}

// BetaM is the closing rate (1/msec) of the sodium activation gate m.
func BetaM(v float32) float32 {
	return 4 * SafeExp(-(v+65)/18)
}

// AlphaH is the opening rate (1/msec) of the sodium inactivation gate h.
func AlphaH(v float32) float32 {
	return 0.07 * SafeExp(-(v+65)/20)
}

// BetaH is the closing rate (1/msec) of the sodium inactivation gate h.
func BetaH(v float32) float32 {
	return 1 / (1 + SafeExp(-(v+35)/10))
}

// AlphaN is the opening rate (1/msec) of the potassium activation gate n.
// The removable singularity at v = -55 returns the limit value 0.1.
func AlphaN(v float32) float32 {
	if math32.Abs(v+55) < SingTol {
		return 0.1
	}
	return 0.01 * (v + 55) / (1 - SafeExp(-(v+55)/10))
}

// BetaN is the closing rate (1/msec) of the potassium activation gate n.
func BetaN(v float32) float32 {
	return 0.125 * SafeExp(-(v+65)/80)
}

// EqGate returns the equilibrium (infinite-time) value of a gating
// variable with the given opening and closing rates: alpha / (alpha + beta).
func EqGate(alpha, beta float32) float32 {
	return alpha / (alpha + beta)
}

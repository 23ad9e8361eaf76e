// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hhsim is the overall repository for a real-time interactive
simulator of the Hodgkin–Huxley neuron membrane model, implemented in
the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* hh: the membrane model itself -- parameters, voltage-dependent channel
gating rate functions, and the fixed-step forward-Euler integrator.
It is a free-standing component with no awareness of timers or displays.

* chans: the per-channel (Na, K, leak) value triples used for maximal
conductances and reversal potentials.

* sched: the real-time scheduler that advances the model in fixed bursts
from a host-owned periodic timer, generates the injected stimulus
current, records decimated samples into a bounded ring buffer for
plotting, and can auto-pause once the membrane potential is steady.

* examples: these actually compile into runnable programs.
examples/hhneuron is the interactive GUI simulation with current
injection, live parameter editing, and a scrolling membrane-potential
plot.
*/
package hhsim

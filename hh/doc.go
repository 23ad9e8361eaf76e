// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hh implements the classic Hodgkin & Huxley (1952) squid giant
axon membrane model: a four-variable nonlinear ODE (membrane potential
Vm plus the m, h, n channel gating variables) advanced by an explicit
forward-Euler integrator at sub-millisecond step sizes.

The model is a free-standing computational component with no awareness
of any timer or display: a host (e.g., the sched package) calls
Params.StepEuler once per integration step with the step size and the
external stimulus current for that simulated instant.

Explicit Euler is only conditionally stable: overly large step sizes or
extreme parameter values make the state diverge silently rather than
producing an error. That is a property of the method, preserved here --
hosts that want to guard against it can poll Neuron.Finite.
*/
package hh

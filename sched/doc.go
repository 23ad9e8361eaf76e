// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sched drives the hh neuron model in real time: a host-owned
periodic timer calls Scheduler.Tick at a wall-clock cadence, and each
tick synchronously runs a fixed burst of integration steps, feeding the
stimulus current for each simulated instant and appending decimated
samples to a bounded ring buffer for display.

Simulated-time advancement is tied to the fixed per-tick step count, not
to wall-clock elapsed time: a tick the host never fires is not caught up
later, so frame drops slow the simulation down rather than making it
jump.  Tick and all control operations share one mutex, so hosts that
dispatch ticks from a thread pool cannot overlap bursts, and pausing is
cooperative, taking effect at the next tick boundary.
*/
package sched

// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

// Sample is one decimated recording of the neuron state.
type Sample struct {
	T  float64 `desc:"simulated time (msec)"`
	Vm float32 `desc:"membrane potential (mV)"`
	M  float32 `desc:"sodium activation gate"`
	H  float32 `desc:"sodium inactivation gate"`
	N  float32 `desc:"potassium activation gate"`
}

// RecordBuf is a fixed-capacity ring buffer of recorded samples.
// Once full, new samples overwrite the oldest ones, so memory stays
// bounded over arbitrarily long sessions while retaining the maximum
// displayable window of history.  It is owned by the Scheduler and
// exposed to displays only through copying accessors.
type RecordBuf struct {

	// maximum number of samples retained
	Cap int `inactive:"+" desc:"maximum number of samples retained"`

	buf []Sample
	st  int // index of oldest sample
	n   int // number of valid samples
}

// NewRecordBuf returns a buffer retaining up to nc samples (min 1).
func NewRecordBuf(nc int) *RecordBuf {
	if nc < 1 {
		nc = 1
	}
	return &RecordBuf{Cap: nc, buf: make([]Sample, nc)}
}

// Reset discards all samples, keeping the allocated capacity.
func (rb *RecordBuf) Reset() {
	rb.st = 0
	rb.n = 0
}

// Len returns the number of samples currently held.
func (rb *RecordBuf) Len() int {
	return rb.n
}

// Add appends a sample, overwriting the oldest one when full.
func (rb *RecordBuf) Add(sm Sample) {
	if rb.n < rb.Cap {
		rb.buf[(rb.st+rb.n)%rb.Cap] = sm
		rb.n++
		return
	}
	rb.buf[rb.st] = sm
	rb.st = (rb.st + 1) % rb.Cap
}

// At returns the i-th sample, with 0 = oldest.
func (rb *RecordBuf) At(i int) Sample {
	return rb.buf[(rb.st+i)%rb.Cap]
}

// Last returns the most recent sample (zero Sample if empty).
func (rb *RecordBuf) Last() Sample {
	if rb.n == 0 {
		return Sample{}
	}
	return rb.At(rb.n - 1)
}

// Samples returns a copy of all held samples in time order.
// The copy is safe for a display to read while the scheduler appends.
func (rb *RecordBuf) Samples() []Sample {
	sms := make([]Sample, rb.n)
	for i := 0; i < rb.n; i++ {
		sms[i] = rb.At(i)
	}
	return sms
}

// VmRange returns the min / max membrane potential over the last k
// samples (all samples if k >= Len).
func (rb *RecordBuf) VmRange(k int) minmax.F32 {
	vr := minmax.F32{}
	vr.SetInfinity()
	if k > rb.n {
		k = rb.n
	}
	for i := rb.n - k; i < rb.n; i++ {
		vr.FitValInRange(rb.At(i).Vm)
	}
	return vr
}

// MemSize returns the human-readable memory footprint of the buffer.
func (rb *RecordBuf) MemSize() string {
	mem := uint64(rb.Cap) * uint64(unsafe.Sizeof(Sample{}))
	return (datasize.ByteSize)(mem).HumanReadable()
}

// ConfigTable configures an etable with the recording schema, for
// plotting: Time, Vm, and the three gating variables.
func (rb *RecordBuf) ConfigTable(dt *etable.Table) {
	dt.SetMetaData("name", "RecordBuf")
	dt.SetMetaData("read-only", "true")
	sch := etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64},
		{Name: "Vm", Type: etensor.FLOAT32},
		{Name: "M", Type: etensor.FLOAT32},
		{Name: "H", Type: etensor.FLOAT32},
		{Name: "N", Type: etensor.FLOAT32},
	}
	dt.SetFromSchema(sch, 0)
}

// WriteTable copies the held samples into the given table, which must
// have been configured by ConfigTable.
func (rb *RecordBuf) WriteTable(dt *etable.Table) {
	dt.SetNumRows(rb.n)
	for i := 0; i < rb.n; i++ {
		sm := rb.At(i)
		dt.SetCellFloat("Time", i, sm.T)
		dt.SetCellFloat("Vm", i, float64(sm.Vm))
		dt.SetCellFloat("M", i, float64(sm.M))
		dt.SetCellFloat("H", i, float64(sm.H))
		dt.SetCellFloat("N", i, float64(sm.N))
	}
}

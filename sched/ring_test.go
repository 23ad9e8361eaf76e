// Copyright (c) 2025, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sched

import (
	"testing"

	"github.com/emer/etable/v2/etable"
)

func TestRingWrap(t *testing.T) {
	rb := NewRecordBuf(5)
	for i := 0; i < 8; i++ {
		rb.Add(Sample{T: float64(i), Vm: float32(i)})
	}
	if rb.Len() != 5 {
		t.Fatalf("len: %v, want 5\n", rb.Len())
	}
	if rb.At(0).T != 3 {
		t.Errorf("oldest: %v, want 3\n", rb.At(0).T)
	}
	if rb.Last().T != 7 {
		t.Errorf("last: %v, want 7\n", rb.Last().T)
	}
	sms := rb.Samples()
	for i, sm := range sms {
		if sm.T != float64(3+i) {
			t.Errorf("samples out of order at %v: %v\n", i, sm.T)
		}
	}
	rb.Reset()
	if rb.Len() != 0 {
		t.Errorf("len after reset: %v, want 0\n", rb.Len())
	}
}

func TestRingVmRange(t *testing.T) {
	rb := NewRecordBuf(10)
	vms := []float32{-65, -64, 30, -70, -65.2, -65.1, -64.9, -65}
	for i, vm := range vms {
		rb.Add(Sample{T: float64(i), Vm: vm})
	}
	all := rb.VmRange(rb.Len())
	if all.Min != -70 || all.Max != 30 {
		t.Errorf("full range: %v, want [-70, 30]\n", all)
	}
	// last 4 exclude the spike and trough
	tail := rb.VmRange(4)
	if tail.Min != -65.2 || tail.Max != -64.9 {
		t.Errorf("tail range: %v, want [-65.2, -64.9]\n", tail)
	}
	if tail.Range() >= 1 {
		t.Errorf("tail range size: %v, want < 1\n", tail.Range())
	}
}

func TestRingTable(t *testing.T) {
	rb := NewRecordBuf(4)
	for i := 0; i < 6; i++ {
		rb.Add(Sample{T: float64(i), Vm: float32(-65 + i), M: 0.05, H: 0.6, N: 0.32})
	}
	dt := &etable.Table{}
	rb.ConfigTable(dt)
	rb.WriteTable(dt)
	if dt.Rows != 4 {
		t.Fatalf("rows: %v, want 4\n", dt.Rows)
	}
	if got := dt.CellFloat("Time", 0); got != 2 {
		t.Errorf("Time[0]: %v, want 2\n", got)
	}
	if got := dt.CellFloat("Vm", 3); got != -60 {
		t.Errorf("Vm[3]: %v, want -60\n", got)
	}
	if rb.MemSize() == "" {
		t.Errorf("MemSize empty\n")
	}
}

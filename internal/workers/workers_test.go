// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
)

// mockWorker tracks how many times Run and Stop were called and records its
// id into a shared sequence when one is provided.
type mockWorker struct {
	id        int
	runCount  int
	stopCount int
	sequence  *[]int
}

func (m *mockWorker) Run() {
	m.runCount++
	if m.sequence != nil {
		*m.sequence = append(*m.sequence, m.id)
	}
}

func (m *mockWorker) Stop() {
	m.stopCount++
	if m.sequence != nil {
		*m.sequence = append(*m.sequence, -m.id)
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic on empty workers list
	NewWorkers().Run()
	NewWorkers().Stop()
}

func TestWorkers_RunAndStop_Order(t *testing.T) {
	sequence := []int{}

	ws := NewWorkers(
		&mockWorker{id: 1, sequence: &sequence},
		&mockWorker{id: 2, sequence: &sequence},
		&mockWorker{id: 3, sequence: &sequence},
	)
	ws.Run()
	ws.Stop()

	// start in declaration order, stop in reverse
	expected := []int{1, 2, 3, -3, -2, -1}
	if len(sequence) != len(expected) {
		t.Fatalf("expected %d events, got %d", len(expected), len(sequence))
	}
	for i, v := range expected {
		if sequence[i] != v {
			t.Errorf("expected sequence[%d]=%d, got %d", i, v, sequence[i])
		}
	}
}

func TestWorkers_Stop_AllWorkersAreStopped(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := NewWorkers(w1, w2)
	ws.Run()
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2} {
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

package testutil

import (
	"errors"

	"github.com/AntonioJCosta/myshell/internal/core/domain/timing"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

// MockCPUClock returns Snapshots in order, one per call. Errs, when set,
// supplies the error for the call with the same index.
type MockCPUClock struct {
	Snapshots []timing.Snapshot
	Errs      []error
	calls     int
}

// ChildTimes returns the next configured snapshot.
func (m *MockCPUClock) ChildTimes() (timing.Snapshot, error) {
	i := m.calls
	m.calls++
	if i < len(m.Errs) && m.Errs[i] != nil {
		return timing.Snapshot{}, m.Errs[i]
	}
	if i < len(m.Snapshots) {
		return m.Snapshots[i], nil
	}
	return timing.Snapshot{}, errors.New("MockCPUClock: no snapshot configured")
}

// Calls reports how many snapshots were taken.
func (m *MockCPUClock) Calls() int {
	return m.calls
}

var _ ports.CPUClock = (*MockCPUClock)(nil)

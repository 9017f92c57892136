package ports

import "github.com/AntonioJCosta/myshell/internal/core/domain/timing"

// CPUClock reports CPU time accumulated by terminated, waited-for children.
type CPUClock interface {
	ChildTimes() (timing.Snapshot, error)
}

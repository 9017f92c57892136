/*
Package cputime reports CPU time accumulated by the interpreter's terminated
children, as the time built-in needs it.
*/
package cputime

import (
	"fmt"
	"time"

	"github.com/AntonioJCosta/myshell/internal/core/domain/command"
	"github.com/AntonioJCosta/myshell/internal/core/domain/timing"
	"github.com/AntonioJCosta/myshell/internal/core/ports"
)

// ticks is a raw accumulated-children reading in clock ticks.
type ticks struct {
	user   int64
	system int64
}

// Clock implements ports.CPUClock on top of a clock-tick source.
type Clock struct {
	ticksPerSecond int64
	read           func() (ticks, error)
}

// NewClock creates a Clock backed by the operating system. If the clock tick
// frequency cannot be determined, every snapshot fails with
// command.ErrTimingUnavailable.
func NewClock() ports.CPUClock {
	hz, err := clockTicksPerSecond()
	if err != nil {
		return &Clock{read: func() (ticks, error) { return ticks{}, err }}
	}
	return &Clock{ticksPerSecond: hz, read: readChildTicks}
}

// ChildTimes implements the ports.CPUClock interface.
func (c *Clock) ChildTimes() (timing.Snapshot, error) {
	t, err := c.read()
	if err != nil {
		return timing.Snapshot{}, fmt.Errorf("%w: %v", command.ErrTimingUnavailable, err)
	}
	return timing.Snapshot{
		ChildUser:   c.duration(t.user),
		ChildSystem: c.duration(t.system),
	}, nil
}

func (c *Clock) duration(n int64) time.Duration {
	return time.Duration(n) * time.Second / time.Duration(c.ticksPerSecond)
}

//go:build unix && !linux

package cputime

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Without times(2), child usage comes from getrusage(2) in microseconds,
// so the tick frequency is fixed at one million.
const microsPerSecond = 1_000_000

func clockTicksPerSecond() (int64, error) {
	return microsPerSecond, nil
}

func readChildTicks() (ticks, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_CHILDREN, &ru); err != nil {
		return ticks{}, fmt.Errorf("getrusage: %w", err)
	}
	return ticks{
		user:   int64(ru.Utime.Sec)*microsPerSecond + int64(ru.Utime.Usec),
		system: int64(ru.Stime.Sec)*microsPerSecond + int64(ru.Stime.Usec),
	}, nil
}

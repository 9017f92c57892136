//go:build linux

package cputime

import (
	"fmt"

	"github.com/tklauser/go-sysconf"
	"golang.org/x/sys/unix"
)

func clockTicksPerSecond() (int64, error) {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		return 0, fmt.Errorf("reading clock tick frequency: %w", err)
	}
	if hz <= 0 {
		return 0, fmt.Errorf("invalid clock tick frequency %d", hz)
	}
	return hz, nil
}

// readChildTicks reads tms_cutime and tms_cstime via times(2).
func readChildTicks() (ticks, error) {
	var tms unix.Tms
	if _, err := unix.Times(&tms); err != nil {
		return ticks{}, fmt.Errorf("times: %w", err)
	}
	return ticks{user: int64(tms.Cutime), system: int64(tms.Cstime)}, nil
}

//go:build !unix

package cputime

import "errors"

var errUnsupported = errors.New("child CPU times are not supported on this platform")

func clockTicksPerSecond() (int64, error) {
	return 0, errUnsupported
}

func readChildTicks() (ticks, error) {
	return ticks{}, errUnsupported
}

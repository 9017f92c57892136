/*
Package timing defines CPU time snapshots used by the time built-in.
*/
package timing

import "time"

/*
Snapshot holds the CPU time accumulated by waited-for child processes at one
point in time.
*/
type Snapshot struct {
	ChildUser   time.Duration
	ChildSystem time.Duration
}

// Sub returns the CPU time accumulated between start and s.
func (s Snapshot) Sub(start Snapshot) Snapshot {
	return Snapshot{
		ChildUser:   s.ChildUser - start.ChildUser,
		ChildSystem: s.ChildSystem - start.ChildSystem,
	}
}

//go:build unix

package utils

import (
	"syscall"
	"time"
)

// processCPUTime returns user plus system time consumed by this process
func processCPUTime() time.Duration {
	var usage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &usage); err != nil {
		return 0
	}
	return time.Duration(usage.Utime.Nano() + usage.Stime.Nano())
}

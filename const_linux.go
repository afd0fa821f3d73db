//go:build linux

package timerfd

import "golang.org/x/sys/unix"

// Clock sources, refer to `man 2 timerfd_create`
const (
	ClockRealtime  = unix.CLOCK_REALTIME
	ClockMonotonic = unix.CLOCK_MONOTONIC
	ClockBoottime  = unix.CLOCK_BOOTTIME // counts time spent in suspend
)

// Create flags
const (
	NonBlock = unix.TFD_NONBLOCK
	CloExec  = unix.TFD_CLOEXEC
)

// Settime flags
const (
	TimerAbstime = unix.TFD_TIMER_ABSTIME
)

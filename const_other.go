//go:build !linux

package timerfd

// Same values as linux/amd64 so callers build everywhere.
// Only the emulated backend runs here, it ignores the clock source.
const (
	ClockRealtime  = 0
	ClockMonotonic = 1
	ClockBoottime  = 7
)

const (
	NonBlock = 0x800
	CloExec  = 0x80000
)

const (
	TimerAbstime = 0x1
)

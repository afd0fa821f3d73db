package timerfd

import (
	"time"
)

// Clock is the time source of the emulated backend
type Clock interface {
	// Now returns wall-clock seconds since the unix epoch
	Now() float64
}

type wallClock struct{}

func (wallClock) Now() float64 {
	return float64(time.Now().UnixNano()) / nsecPerSec
}

package timerfd

import (
	"math"
	"strconv"
	"time"
)

const nsecPerSec = 1000 * 1000 * 1000

// TimeValue is a duration split into whole seconds and nanoseconds,
// the same shape as struct timespec.
type TimeValue struct {
	Sec  int64
	Nsec int64 // [0, 1e9)
}

// FromSeconds decomposes s into whole seconds and nanoseconds.
// The integral part is truncated toward zero. Negative input is not rejected
// here, Spec.Validate does that.
//
// Out of range input saturates: s >= 2^63 (and +Inf) gives the largest
// TimeValue, s < -2^63 (and -Inf) the smallest. NaN gives Nsec = -1 so that
// Validate rejects it.
func FromSeconds(s float64) TimeValue {
	switch {
	case math.IsNaN(s):
		return TimeValue{Nsec: -1}
	case s >= 0x1p63:
		return TimeValue{Sec: math.MaxInt64, Nsec: nsecPerSec - 1}
	case s < -0x1p63:
		return TimeValue{Sec: math.MinInt64}
	}
	whole, frac := math.Modf(s)
	tv := TimeValue{
		Sec:  int64(whole),
		Nsec: int64(math.Round(frac * nsecPerSec)),
	}
	// rounding may carry a full second
	if tv.Nsec >= nsecPerSec {
		tv.Sec++
		tv.Nsec -= nsecPerSec
	} else if tv.Nsec <= -nsecPerSec {
		tv.Sec--
		tv.Nsec += nsecPerSec
	}
	return tv
}

// FromDuration converts a time.Duration
func FromDuration(d time.Duration) TimeValue {
	return TimeValue{
		Sec:  int64(d / time.Second),
		Nsec: int64(d % time.Second),
	}
}

// Seconds returns Sec + Nsec/1e9
func (tv TimeValue) Seconds() float64 {
	return float64(tv.Sec) + float64(tv.Nsec)/nsecPerSec
}

func (tv TimeValue) Duration() time.Duration {
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Nsec)
}

func (tv TimeValue) IsZero() bool {
	return tv.Sec == 0 && tv.Nsec == 0
}

func (tv TimeValue) valid() bool {
	return tv.Sec >= 0 && tv.Nsec >= 0 && tv.Nsec < nsecPerSec
}

// String formats as `1.500000000s'
func (tv TimeValue) String() string {
	b := make([]byte, 0, 24)
	b = strconv.AppendInt(b, tv.Sec, 10)
	b = append(b, '.')
	ns := strconv.FormatInt(tv.Nsec, 10)
	for i := len(ns); i < 9; i++ {
		b = append(b, '0')
	}
	b = append(b, ns...)
	return string(append(b, 's'))
}

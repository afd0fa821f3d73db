package timerfd

import (
	"encoding/binary"
)

// emulated polls the wall clock, for hosts without timerfd.
//
// Known gaps compared with timerfd:
//   - read never blocks and reports at most one expiration per call, however
//     many intervals have elapsed since the previous read.
//   - only relative arming is supported.
type emulated struct {
	clock Clock

	interval float64 // seconds, 0 is one-shot
	next     float64 // epoch seconds of the next expiration
	armed    bool
}

func newEmulated(c Clock) *emulated {
	return &emulated{clock: c} // interval=0, next=0: never armed
}

func (e *emulated) settime(flags int, newSpec *Spec, oldSpec *Spec) error {
	if flags&TimerAbstime != 0 {
		return ErrAbstimeUnsupported
	}
	now := e.clock.Now()
	if oldSpec != nil {
		e.snapshot(now, oldSpec)
	}
	// like timerfd, the interval is kept even when disarming
	e.interval = newSpec.Interval.Seconds()
	if newSpec.IsDisarm() {
		e.next, e.armed = 0, false
		return nil
	}
	e.next = now + newSpec.Value.Seconds()
	e.armed = true
	return nil
}

func (e *emulated) gettime(curSpec *Spec) error {
	e.snapshot(e.clock.Now(), curSpec)
	return nil
}

func (e *emulated) snapshot(now float64, s *Spec) {
	s.Interval = FromSeconds(e.interval)
	s.Value = TimeValue{}
	if e.armed && e.next > now {
		s.Value = FromSeconds(e.next - now)
	}
}

func (e *emulated) read(p []byte) (int, error) {
	var n uint64
	if e.armed && e.clock.Now() >= e.next {
		n = 1
		if e.interval > 0 {
			e.next += e.interval // keep phase with the original schedule
		} else {
			e.armed = false
		}
	}
	binary.LittleEndian.PutUint64(p, n)
	return 8, nil
}

func (e *emulated) byteOrder() binary.ByteOrder {
	return binary.LittleEndian
}

func (e *emulated) fd() int {
	return -1
}

func (e *emulated) close() error {
	return nil
}

package timerfd

import (
	"sync/atomic"
)

// fd is a native timer descriptor owned by exactly one Timer.
// It can not be constructed outside this package.
type fd struct {
	noCopy

	v         int
	closeOnce atomic.Int32 // released exactly once
	p         Provider
}

func newFd(p Provider, clockType, flags int) (*fd, error) {
	v, err := p.Create(clockType, flags)
	if err != nil {
		return nil, err
	}
	return &fd{v: v, p: p}, nil
}

func (f *fd) Fd() int {
	if f.closeOnce.Load() != 0 {
		return -1
	}
	return f.v
}

func (f *fd) Close() error {
	if !f.closeOnce.CompareAndSwap(0, 1) {
		return ErrClosed
	}
	err := f.p.Close(f.v)
	f.v = -1
	return err
}

package timerfd

import (
	"errors"
	"syscall"
)

var (
	// ErrInvalidSpec negative interval/value, or nanoseconds out of [0, 1e9)
	ErrInvalidSpec = errors.New("timerfd: invalid spec")

	// ErrClosed operation on a closed timer
	ErrClosed = errors.New("timerfd: timer closed")

	// ErrShortBuffer read buffer smaller than the 8-byte expiration word
	ErrShortBuffer = errors.New("timerfd: read buffer < 8 bytes")

	// ErrAbstimeUnsupported the emulated backend only arms relative timers
	ErrAbstimeUnsupported = errors.New("timerfd: TimerAbstime not supported by emulation")

	// ErrNoProvider native backend requested on a host without timerfd
	ErrNoProvider = errors.New("timerfd: no native provider on this platform")
)

// ProviderError is a failed native timer call. Errno is kept unchanged.
type ProviderError struct {
	Op    string // syscall name, e.g. `timerfd_settime'
	Errno syscall.Errno
}

func newProviderError(op string, err error) error {
	if err == nil {
		return nil
	}
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return errors.New("timerfd: " + op + ": " + err.Error())
	}
	return &ProviderError{Op: op, Errno: errno}
}

func (e *ProviderError) Error() string {
	return "timerfd: " + e.Op + ": " + e.Errno.Error()
}

// Code returns the raw errno value
func (e *ProviderError) Code() int {
	return int(e.Errno)
}

// Unwrap allows errors.Is(err, unix.EAGAIN)
func (e *ProviderError) Unwrap() error {
	return e.Errno
}

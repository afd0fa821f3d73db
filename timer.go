package timerfd

import (
	"encoding/binary"

	"github.com/sirupsen/logrus"
)

// Detecting illegal struct copies using `go vet`
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type backend interface {
	settime(flags int, newSpec *Spec, oldSpec *Spec) error

	gettime(curSpec *Spec) error

	// len(p) >= 8
	read(p []byte) (int, error)

	byteOrder() binary.ByteOrder

	fd() int

	close() error
}

// Timer is a single alarm with timerfd semantics.
//
// On linux it is a real timerfd and Fd() can be registered with epoll.
// Elsewhere it is emulated: Fd() returns -1 and the owner polls Read/Expirations.
//
// A Timer is not safe for concurrent use, keep it in one goroutine.
type Timer struct {
	noCopy

	clockType int
	flags     int
	emulated  bool
	closed    bool

	b   backend
	log logrus.FieldLogger
}

// Create returns a disarmed timer, refer to `man 2 timerfd_create`.
//
// The backend is chosen here and never changes: native when the host supports
// it (or WithProvider is given), emulated otherwise.
func Create(clockType, flags int, opts ...Option) (*Timer, error) {
	o := setOptions(opts...)
	t := &Timer{
		clockType: clockType,
		flags:     flags,
	}

	p := o.provider
	if p == nil && !o.forceEmulation && NativeSupported() {
		p = defaultProvider()
	}
	if o.forceEmulation || p == nil {
		t.emulated = true
		t.b = newEmulated(o.clock)
	} else {
		n, err := newNative(p, clockType, flags)
		if err != nil {
			o.logger.WithError(err).Error("create timer failed")
			return nil, err
		}
		t.b = n
	}

	backendName := "native"
	if t.emulated {
		backendName = "emulated"
	}
	t.log = o.logger.WithFields(logrus.Fields{
		"clock":   clockType,
		"backend": backendName,
		"fd":      t.b.fd(),
	})
	t.log.Debug("timer created")
	return t, nil
}

// Settime arms or disarms the timer, refer to `man 2 timerfd_settime`.
//
// A zero newSpec.Value disarms, a zero newSpec.Interval makes it one-shot.
// When oldSpec != nil it receives the previous setting.
// On error the timer is left unchanged.
func (t *Timer) Settime(flags int, newSpec Spec, oldSpec *Spec) error {
	if t.closed {
		return ErrClosed
	}
	if err := newSpec.Validate(); err != nil {
		return err
	}
	if err := t.b.settime(flags, &newSpec, oldSpec); err != nil {
		t.log.WithError(err).Warn("settime failed")
		return err
	}
	return nil
}

// Gettime fills curSpec with the interval and the time left until the next
// expiration. curSpec.Value is never negative.
func (t *Timer) Gettime(curSpec *Spec) error {
	if t.closed {
		return ErrClosed
	}
	if err := t.b.gettime(curSpec); err != nil {
		t.log.WithError(err).Warn("gettime failed")
		return err
	}
	return nil
}

// Read consumes expirations into p[:8] and returns 8.
//
// Native timers block until one expiration unless created with NonBlock.
// Emulated timers never block and write a count of 0 or 1 in little-endian.
func (t *Timer) Read(p []byte) (int, error) {
	if t.closed {
		return 0, ErrClosed
	}
	if len(p) < 8 {
		return 0, ErrShortBuffer
	}
	return t.b.read(p[:8])
}

// Expirations reads and decodes the expiration count
func (t *Timer) Expirations() (uint64, error) {
	var buf [8]byte
	if _, err := t.Read(buf[:]); err != nil {
		return 0, err
	}
	return t.b.byteOrder().Uint64(buf[:]), nil
}

// Fd returns the pollable descriptor, -1 for emulated or closed timers.
func (t *Timer) Fd() int {
	if t.closed {
		return -1
	}
	return t.b.fd()
}

func (t *Timer) Emulated() bool {
	return t.emulated
}

func (t *Timer) ClockType() int {
	return t.clockType
}

func (t *Timer) Flags() int {
	return t.flags
}

// Close releases the native descriptor. Must not race with a blocking Read.
// Calling it again returns ErrClosed.
func (t *Timer) Close() error {
	if t.closed {
		return ErrClosed
	}
	t.closed = true // the kernel drops the fd even if close(2) fails
	err := t.b.close()
	if err != nil {
		t.log.WithError(err).Error("close failed")
	} else {
		t.log.Debug("timer closed")
	}
	return err
}

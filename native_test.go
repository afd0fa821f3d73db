package timerfd

import (
	"bytes"
	"encoding/binary"
	"errors"
	"syscall"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider records what the native backend forwards
type fakeProvider struct {
	nextFd    int
	createErr error
	setErr    error

	clockType, createFlags int
	setFlags               int
	spec                   Spec
	pending                uint64
	closed                 map[int]int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{nextFd: 7, closed: map[int]int{}}
}

func (p *fakeProvider) Create(clockType, flags int) (int, error) {
	if p.createErr != nil {
		return -1, p.createErr
	}
	p.clockType, p.createFlags = clockType, flags
	return p.nextFd, nil
}

func (p *fakeProvider) Settime(fd, flags int, newSpec *Spec, oldSpec *Spec) error {
	if p.setErr != nil {
		return p.setErr
	}
	if oldSpec != nil {
		*oldSpec = p.spec
	}
	p.setFlags = flags
	p.spec = *newSpec
	return nil
}

func (p *fakeProvider) Gettime(fd int, curSpec *Spec) error {
	*curSpec = p.spec
	return nil
}

func (p *fakeProvider) Read(fd int, b []byte) (int, error) {
	if p.pending == 0 {
		return 0, &ProviderError{Op: "read", Errno: syscall.EAGAIN}
	}
	binary.NativeEndian.PutUint64(b, p.pending)
	p.pending = 0
	return 8, nil
}

func (p *fakeProvider) Close(fd int) error {
	p.closed[fd]++
	return nil
}

func TestNative_Forwarding(t *testing.T) {
	fp := newFakeProvider()
	tm, err := Create(ClockBoottime, NonBlock, WithProvider(fp))
	require.NoError(t, err)
	assert.False(t, tm.Emulated())
	assert.Equal(t, 7, tm.Fd())
	assert.Equal(t, ClockBoottime, fp.clockType)
	assert.Equal(t, NonBlock, fp.createFlags)
	assert.Equal(t, ClockBoottime, tm.ClockType())
	assert.Equal(t, NonBlock, tm.Flags())

	spec := SpecFromSeconds(0.25, 3)
	require.NoError(t, tm.Settime(TimerAbstime, spec, nil))
	assert.Equal(t, TimerAbstime, fp.setFlags, "flags are forwarded verbatim")
	assert.Equal(t, spec, fp.spec)

	var old Spec
	require.NoError(t, tm.Settime(0, Spec{}, &old))
	assert.Equal(t, spec, old)

	var cur Spec
	require.NoError(t, tm.Gettime(&cur))
	assert.Equal(t, Spec{}, cur)
}

func TestNative_Read(t *testing.T) {
	fp := newFakeProvider()
	tm, err := Create(ClockMonotonic, NonBlock, WithProvider(fp))
	require.NoError(t, err)

	_, err = tm.Expirations()
	assert.ErrorIs(t, err, syscall.EAGAIN)

	fp.pending = 3 // overruns are reported as is
	n, err := tm.Expirations()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)
}

func TestNative_ProviderErrors(t *testing.T) {
	fp := newFakeProvider()
	fp.createErr = &ProviderError{Op: "timerfd_create", Errno: syscall.EMFILE}
	tm, err := Create(ClockMonotonic, 0, WithProvider(fp))
	assert.Nil(t, tm)
	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, int(syscall.EMFILE), pe.Code())

	fp.createErr = nil
	tm, err = Create(ClockMonotonic, 0, WithProvider(fp))
	require.NoError(t, err)
	fp.setErr = &ProviderError{Op: "timerfd_settime", Errno: syscall.EINVAL}
	err = tm.Settime(0, SpecFromSeconds(1, 1), nil)
	assert.ErrorIs(t, err, syscall.EINVAL)

	// invalid specs never reach the provider
	fp.setErr = nil
	assert.ErrorIs(t, tm.Settime(0, SpecFromSeconds(1, -1), nil), ErrInvalidSpec)
	assert.Equal(t, Spec{}, fp.spec)
}

func TestNative_CloseOnce(t *testing.T) {
	fp := newFakeProvider()
	tm, err := Create(ClockMonotonic, 0, WithProvider(fp))
	require.NoError(t, err)

	require.NoError(t, tm.Close())
	assert.ErrorIs(t, tm.Close(), ErrClosed)
	assert.Equal(t, 1, fp.closed[7])
	assert.Equal(t, -1, tm.Fd())

	assert.ErrorIs(t, tm.Settime(0, SpecFromSeconds(1, 1), nil), ErrClosed)
	assert.ErrorIs(t, tm.Gettime(&Spec{}), ErrClosed)
	_, err = tm.Read(make([]byte, 8))
	assert.ErrorIs(t, err, ErrClosed)
	assert.Equal(t, 1, fp.closed[7])
}

func TestNative_ForceEmulationWins(t *testing.T) {
	fp := newFakeProvider()
	tm, err := Create(ClockMonotonic, 0, WithProvider(fp), ForceEmulation(true))
	require.NoError(t, err)
	assert.True(t, tm.Emulated())
	assert.Equal(t, 0, fp.clockType)
}

func TestProviderError(t *testing.T) {
	err := newProviderError("timerfd_gettime", syscall.EBADF)
	assert.ErrorIs(t, err, syscall.EBADF)
	assert.Equal(t, "timerfd: timerfd_gettime: "+syscall.EBADF.Error(), err.Error())
	assert.NoError(t, newProviderError("x", nil))

	err = newProviderError("x", errors.New("boom"))
	var pe *ProviderError
	assert.False(t, errors.As(err, &pe))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("unit")
	l.Logger.SetOutput(&buf)
	l.Logger.SetLevel(logrus.DebugLevel)

	fp := newFakeProvider()
	tm, err := Create(ClockMonotonic, 0, WithProvider(fp), WithLogger(l))
	require.NoError(t, err)
	require.NoError(t, tm.Close())

	out := buf.String()
	assert.Contains(t, out, `msg="timer created"`)
	assert.Contains(t, out, `msg="timer closed"`)
	assert.Contains(t, out, "owner=unit")
	assert.Contains(t, out, "backend=native")
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("pkg")
	l.Logger.SetOutput(&buf)
	l.Logger.SetLevel(logrus.DebugLevel)
	SetLogger(l)
	defer SetLogger(nil)

	tm, err := Create(ClockMonotonic, 0, ForceEmulation(true))
	require.NoError(t, err)
	require.NoError(t, tm.Close())
	assert.Contains(t, buf.String(), "owner=pkg")
	assert.Contains(t, buf.String(), "backend=emulated")

	SetLogger(nil)
	assert.NotSame(t, l, defaultLogger())
}

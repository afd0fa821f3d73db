//go:build linux

package timerfd

import (
	"golang.org/x/sys/unix"
)

// since Linux 2.6.25, flags since 2.6.27
type unixProvider struct{}

func defaultProvider() Provider {
	return unixProvider{}
}

// probeNative creates and drops one timerfd. Only ENOSYS/EINVAL mean the
// facility is missing, anything else (e.g. EMFILE) is left for Create to report.
func probeNative() error {
	fd, err := unix.TimerfdCreate(unix.CLOCK_MONOTONIC, unix.TFD_CLOEXEC)
	if err != nil {
		if err == unix.ENOSYS || err == unix.EINVAL {
			return newProviderError("timerfd_create", err)
		}
		return nil
	}
	unix.Close(fd)
	return nil
}

func (unixProvider) Create(clockType, flags int) (int, error) {
	fd, err := unix.TimerfdCreate(clockType, flags)
	if err != nil {
		return -1, newProviderError("timerfd_create", err)
	}
	return fd, nil
}

func (unixProvider) Settime(fd, flags int, newSpec *Spec, oldSpec *Spec) error {
	nv, err := toItimerSpec(newSpec)
	if err != nil {
		return newProviderError("timerfd_settime", err)
	}
	var ov *unix.ItimerSpec
	if oldSpec != nil {
		ov = &unix.ItimerSpec{}
	}
	if err = unix.TimerfdSettime(fd, flags, &nv, ov); err != nil {
		return newProviderError("timerfd_settime", err)
	}
	if oldSpec != nil {
		*oldSpec = fromItimerSpec(ov)
	}
	return nil
}

func (unixProvider) Gettime(fd int, curSpec *Spec) error {
	var cv unix.ItimerSpec
	if err := unix.TimerfdGettime(fd, &cv); err != nil {
		return newProviderError("timerfd_gettime", err)
	}
	*curSpec = fromItimerSpec(&cv)
	return nil
}

func (unixProvider) Read(fd int, p []byte) (int, error) {
	for {
		n, err := unix.Read(fd, p)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return n, newProviderError("read", err)
		}
		return n, nil
	}
}

func (unixProvider) Close(fd int) error {
	if err := unix.Close(fd); err != nil {
		return newProviderError("close", err)
	}
	return nil
}

// setField stores v into a timespec field, which is int32 on 32-bit
// layouts and int64 elsewhere. Reports false if v does not fit.
func setField[T ~int32 | ~int64](dst *T, v int64) bool {
	*dst = T(v)
	return int64(*dst) == v
}

// toTimespec copies Sec and Nsec field by field, no total-nanosecond math.
func toTimespec(tv TimeValue) (unix.Timespec, error) {
	var ts unix.Timespec
	if !setField(&ts.Sec, tv.Sec) || !setField(&ts.Nsec, tv.Nsec) {
		return ts, unix.EOVERFLOW
	}
	return ts, nil
}

func fromTimespec(ts unix.Timespec) TimeValue {
	sec, nsec := ts.Unix()
	return TimeValue{Sec: sec, Nsec: nsec}
}

func toItimerSpec(s *Spec) (its unix.ItimerSpec, err error) {
	if its.Interval, err = toTimespec(s.Interval); err != nil {
		return
	}
	its.Value, err = toTimespec(s.Value)
	return
}

func fromItimerSpec(its *unix.ItimerSpec) Spec {
	return Spec{
		Interval: fromTimespec(its.Interval),
		Value:    fromTimespec(its.Value),
	}
}

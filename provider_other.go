//go:build !linux

package timerfd

// No timer-as-descriptor facility outside linux, every timer is emulated.
func defaultProvider() Provider {
	return nil
}

func probeNative() error {
	return ErrNoProvider
}

package timerfd

import (
	"sync"
)

// Probed once per process, read-only afterwards
var (
	nativeOnce sync.Once
	nativeErr  error
)

// NativeSupported reports whether the host has a timer-as-descriptor facility.
func NativeSupported() bool {
	nativeOnce.Do(func() {
		nativeErr = probeNative()
		if nativeErr != nil {
			defaultLogger().WithError(nativeErr).Debug("native timer unavailable, using emulation")
		} else {
			defaultLogger().Debug("native timer available")
		}
	})
	return nativeErr == nil
}

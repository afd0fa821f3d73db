package timerfd

// Provider is the native timer-as-descriptor facility.
//
// Every call returns nil on success, or an error that carries the system
// error code (see ProviderError). Implementations must not retain the Spec
// pointers after returning.
type Provider interface {
	Create(clockType, flags int) (fd int, err error)

	// oldSpec may be nil
	Settime(fd, flags int, newSpec *Spec, oldSpec *Spec) error

	Gettime(fd int, curSpec *Spec) error

	// Read consumes the 8-byte expiration counter
	Read(fd int, p []byte) (int, error)

	Close(fd int) error
}

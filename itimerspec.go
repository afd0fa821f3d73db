package timerfd

// Spec is the interval/value pair of an alarm, the same shape as
// struct itimerspec.
//
// Interval == 0 means one-shot, otherwise the timer is periodic.
// Value is the time until the first expiration, a zero Value disarms.
type Spec struct {
	Interval TimeValue
	Value    TimeValue
}

// SpecFromSeconds builds a Spec from floating point seconds
func SpecFromSeconds(interval, value float64) Spec {
	return Spec{
		Interval: FromSeconds(interval),
		Value:    FromSeconds(value),
	}
}

// Validate rejects negative or denormalized fields
func (s Spec) Validate() error {
	if !s.Interval.valid() || !s.Value.valid() {
		return ErrInvalidSpec
	}
	return nil
}

// IsDisarm reports whether arming with s stops the timer.
func (s Spec) IsDisarm() bool {
	return s.Value.IsZero()
}

func (s Spec) String() string {
	return "{interval: " + s.Interval.String() + ", value: " + s.Value.String() + "}"
}

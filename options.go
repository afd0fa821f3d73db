package timerfd

import (
	"github.com/sirupsen/logrus"
)

// Options of one Timer
type Options struct {
	logger logrus.FieldLogger

	// emulated backend
	clock          Clock
	forceEmulation bool

	// native backend, nil means the platform default
	provider Provider
}

type Option func(*Options)

func setOptions(optL ...Option) *Options {
	//= default options
	o := &Options{
		logger: defaultLogger(),
		clock:  wallClock{},
	}
	for _, opt := range optL {
		opt(o)
	}
	return o
}

// WithLogger logs this timer's events to l instead of the package logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock sets the time source of the emulated backend. Ignored by the native one.
func WithClock(c Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.clock = c
		}
	}
}

// ForceEmulation skips the native facility even when the host has it
func ForceEmulation(v bool) Option {
	return func(o *Options) {
		o.forceEmulation = v
	}
}

// WithProvider uses p as the native facility, bypassing capability detection.
// ForceEmulation still takes precedence.
func WithProvider(p Provider) Option {
	return func(o *Options) {
		o.provider = p
	}
}

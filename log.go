package timerfd

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

type loggerRef struct {
	l logrus.FieldLogger
}

// pkgLogger is used by timers created without WithLogger
var pkgLogger atomic.Pointer[loggerRef]

func init() {
	pkgLogger.Store(&loggerRef{l: NewLogger("timerfd")})
}

func defaultLogger() logrus.FieldLogger {
	return pkgLogger.Load().l
}

// SetLogger replaces the package logger, nil restores the default one.
// Timers already created keep the logger they were created with.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = NewLogger("timerfd")
	}
	pkgLogger.Store(&loggerRef{l: l})
}

// NewLogger returns a WarnLevel text logger whose entries carry `owner=<owner>'.
// Adjust the level or output through the Logger field of the returned entry.
func NewLogger(owner string) *logrus.Entry {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.StampMilli,
	})
	return l.WithField("owner", owner)
}

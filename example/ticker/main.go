//go:build linux

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/shaovie/timerfd"
)

var (
	interval = flag.Duration("i", 2*time.Second, "interval, 0 for one-shot")
	delay    = flag.Duration("d", time.Second, "initial delay")
	count    = flag.Int("n", 5, "exit after n expirations")
	emulate  = flag.Bool("emulate", false, "use the emulated backend")
	debug    = flag.Bool("v", false, "debug log")
)

func main() {
	flag.Parse()
	if *debug {
		l := timerfd.NewLogger("ticker")
		l.Logger.SetLevel(logrus.DebugLevel)
		timerfd.SetLogger(l)
	}

	t, err := timerfd.Create(timerfd.ClockMonotonic, timerfd.NonBlock|timerfd.CloExec,
		timerfd.ForceEmulation(*emulate),
	)
	if err != nil {
		fmt.Println("create:", err.Error())
		os.Exit(1)
	}
	defer t.Close()

	spec := timerfd.Spec{
		Interval: timerfd.FromDuration(*interval),
		Value:    timerfd.FromDuration(*delay),
	}
	if err = t.Settime(0, spec, nil); err != nil {
		fmt.Println("settime:", err.Error())
		os.Exit(1)
	}

	if t.Emulated() {
		err = pollLoop(t)
	} else {
		err = epollLoop(t)
	}
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func report(w io.Writer, t *timerfd.Timer, n uint64, total int) {
	now := time.Now().Format(time.StampMilli)
	var cur timerfd.Spec
	if err := t.Gettime(&cur); err != nil {
		fmt.Fprintf(w, "%s expirations=%d total=%d gettime: %s\n", now, n, total, err.Error())
		return
	}
	fmt.Fprintf(w, "%s expirations=%d total=%d next in %s\n", now, n, total, cur.Value)
}

func epollLoop(t *timerfd.Timer) error {
	efd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return fmt.Errorf("epoll_create1: %w", err)
	}
	defer unix.Close(efd)

	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(t.Fd())}
	if err = unix.EpollCtl(efd, unix.EPOLL_CTL_ADD, t.Fd(), &ev); err != nil {
		return fmt.Errorf("epoll_ctl add: %w", err)
	}

	events := make([]unix.EpollEvent, 1)
	total := 0
	for total < *count {
		nfds, err := unix.EpollWait(efd, events, -1)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return fmt.Errorf("epoll_wait: %w", err)
		}
		if nfds < 1 {
			continue
		}
		n, err := t.Expirations()
		if err != nil {
			if errors.Is(err, unix.EAGAIN) { // spurious wakeup
				continue
			}
			return err
		}
		total += int(n)
		report(os.Stdout, t, n, total)
	}
	return nil
}

// The emulated timer has no descriptor, so sleep and poll.
func pollLoop(t *timerfd.Timer) error {
	total := 0
	for total < *count {
		n, err := t.Expirations()
		if err != nil {
			return err
		}
		if n > 0 {
			total += int(n)
			report(os.Stdout, t, n, total)
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

package timerfd

import (
	"encoding/binary"
)

// native forwards every call to the provider
type native struct {
	h *fd
}

func newNative(p Provider, clockType, flags int) (*native, error) {
	h, err := newFd(p, clockType, flags)
	if err != nil {
		return nil, err
	}
	return &native{h: h}, nil
}

func (n *native) settime(flags int, newSpec *Spec, oldSpec *Spec) error {
	return n.h.p.Settime(n.h.v, flags, newSpec, oldSpec)
}

func (n *native) gettime(curSpec *Spec) error {
	return n.h.p.Gettime(n.h.v, curSpec)
}

// May block if the timer was created without NonBlock.
// A non-blocking read with nothing pending fails with EAGAIN.
func (n *native) read(p []byte) (int, error) {
	return n.h.p.Read(n.h.v, p)
}

// the kernel writes the counter in host order
func (n *native) byteOrder() binary.ByteOrder {
	return binary.NativeEndian
}

func (n *native) fd() int {
	return n.h.Fd()
}

func (n *native) close() error {
	return n.h.Close()
}

package main

import (
	"fmt"
	"io"

	"github.com/friendsofgo/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"k8s.io/klog/v2"
)

// Link is a bound raw socket, as far as the Transmitter cares.
type Link interface {
	io.Writer
	io.Closer
}

// Transmitter sends the contents of one file as one link-layer frame.
type Transmitter struct {
	// Euid returns the effective user id of the process
	Euid func() int
	// Dial opens a raw socket bound to the named interface
	Dial func(iface string) (Link, error)
	// Fs the frame file is read from
	Fs afero.Fs
	// Stderr receives the single diagnostic line of a failed run
	Stderr io.Writer
}

// NewTransmitter builds a Transmitter backed by the real OS.
func NewTransmitter(stderr io.Writer) *Transmitter {
	return &Transmitter{
		Euid:   defaultEuid,
		Dial:   dialRaw,
		Fs:     afero.NewOsFs(),
		Stderr: stderr,
	}
}

func dialRaw(iface string) (Link, error) {
	s, err := NewSocket(iface)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Run performs one transmission for the process arguments and returns the
// exit code. A failed run writes exactly one line to Stderr; a successful
// one writes nothing.
func (t *Transmitter) Run(args []string) int {
	var (
		inv *Invocation
		n   int
	)
	err := guard(func() error {
		// Privilege comes before anything else, arguments included.
		if !superuser(t.Euid) {
			return fail(PrivilegeError, errors.New("effective user is not root"))
		}
		var err error
		if inv, err = ParseInvocation(args); err != nil {
			return err
		}
		n, err = t.Transmit(inv.File, inv.Interface)
		return err
	})
	observe(err, n)

	if err != nil {
		klog.V(1).InfoS("Transmission failed", "kind", KindOf(err).String(), "err", err)
		fmt.Fprintln(t.Stderr, Diagnostic(err))
	}
	if inv != nil && inv.MetricsFile != "" {
		if werr := writeMetrics(inv.MetricsFile); werr != nil {
			klog.V(1).InfoS("Metrics not written", "err", werr)
		}
	}
	if err != nil {
		return 1
	}
	return 0
}

// Transmit opens the socket, reads the frame file and writes it as a single
// frame. The socket is closed on every path once it has been opened, and
// the file is closed before the write.
func (t *Transmitter) Transmit(path, iface string) (int, error) {
	timer := prometheus.NewTimer(transmitDuration)
	defer timer.ObserveDuration()

	link, err := t.Dial(iface)
	if err != nil {
		return 0, fail(SocketCreationError, err)
	}
	defer func() {
		if err := link.Close(); err != nil {
			klog.V(1).InfoS("Failed to close socket", "interface", iface, "err", err)
		}
	}()

	frame, err := ReadFrame(t.Fs, path)
	if err != nil {
		return 0, err
	}
	if klog.V(2).Enabled() {
		klog.V(2).InfoS("Sending frame", "interface", iface, "bytes", len(frame), "layers", describe(frame))
	}

	n, err := link.Write(frame)
	if err != nil {
		return n, fail(SocketWriteError, err)
	}
	// RawSocket already refuses short writes; other Link implementations may not.
	if n != len(frame) {
		return n, fail(SocketWriteError, errors.Wrapf(io.ErrShortWrite, "Flushed %d of %d bytes", n, len(frame)))
	}
	return n, nil
}

// guard turns a panic inside fn into an UnhandledFault.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fail(UnhandledFault, errors.Errorf("panic: %v", r))
		}
	}()
	return fn()
}

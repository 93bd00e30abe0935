//go:build linux

package main

import (
	"io"

	"github.com/friendsofgo/errors"
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
	"k8s.io/klog/v2"
)

// RawSocket is an AF_PACKET socket bound to a single interface.
// Whatever is written to it goes on the wire as a complete frame.
type RawSocket struct {
	fd    int
	iface string
}

// NewSocket builds a raw link-layer socket bound to the named interface
func NewSocket(iface string) (*RawSocket, error) {
	link, err := netlink.LinkByName(iface)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to find interface %s", iface)
	}
	attrs := link.Attrs()
	klog.V(2).InfoS("Resolved interface", "interface", iface, "index", attrs.Index, "mtu", attrs.MTU, "state", attrs.OperState.String())

	proto := htons(unix.ETH_P_ALL)
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW|unix.SOCK_CLOEXEC, int(proto))
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create socket")
	}
	if err := attachFilter(fd); err != nil {
		unix.Close(fd)
		return nil, err
	}
	err = unix.Bind(fd, &unix.SockaddrLinklayer{
		Protocol: proto,
		Ifindex:  attrs.Index,
	})
	if err != nil {
		unix.Close(fd)
		return nil, errors.Wrapf(err, "Failed to bind socket to %s", iface)
	}
	return &RawSocket{fd: fd, iface: iface}, nil
}

func attachFilter(fd int) error {
	raw, err := inboundFilter()
	if err != nil {
		return err
	}
	filter := make([]unix.SockFilter, len(raw))
	for i, ins := range raw {
		filter[i] = unix.SockFilter{Code: ins.Op, Jt: ins.Jt, Jf: ins.Jf, K: ins.K}
	}
	prog := unix.SockFprog{Len: uint16(len(filter)), Filter: &filter[0]}
	if err := unix.SetsockoptSockFprog(fd, unix.SOL_SOCKET, unix.SO_ATTACH_FILTER, &prog); err != nil {
		return errors.Wrap(err, "Failed to attach inbound filter")
	}
	return nil
}

// Write sends b as one frame. A frame the kernel accepts only partially
// is an error; it is never retried.
func (s *RawSocket) Write(b []byte) (int, error) {
	n, err := unix.Write(s.fd, b)
	if err != nil {
		return 0, errors.Wrapf(err, "Failed to flush frame on %s", s.iface)
	}
	if n != len(b) {
		return n, errors.Wrapf(io.ErrShortWrite, "Flushed %d of %d bytes on %s", n, len(b), s.iface)
	}
	return n, nil
}

// Close implements io.Closer
func (s *RawSocket) Close() error {
	return unix.Close(s.fd)
}

// htons converts a short from host to network byte order.
func htons(i uint16) uint16 {
	return (i<<8)&0xff00 | i>>8
}

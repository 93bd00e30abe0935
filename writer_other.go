//go:build !linux

package main

import "github.com/friendsofgo/errors"

// RawSocket is unavailable outside Linux.
type RawSocket struct{}

// NewSocket always fails: AF_PACKET sockets are Linux only.
func NewSocket(iface string) (*RawSocket, error) {
	return nil, errors.Errorf("raw link-layer sockets are supported on Linux only (interface %s)", iface)
}

func (s *RawSocket) Write(b []byte) (int, error) {
	return 0, errors.New("raw sockets are unavailable on this platform")
}

// Close implements io.Closer
func (s *RawSocket) Close() error {
	return nil
}

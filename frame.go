package main

import (
	"strings"

	"github.com/friendsofgo/errors"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/spf13/afero"
)

// ReadFrame loads the whole file at path. The file is closed before
// ReadFrame returns, whatever the outcome.
func ReadFrame(fs afero.Fs, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, &Error{Kind: FileOpenError, Path: path, Err: errors.Wrap(err, "Failed to open frame file")}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &Error{Kind: FileOpenError, Path: path, Err: errors.Wrap(err, "Failed to stat frame file")}
	}
	if info.IsDir() {
		return nil, &Error{Kind: FileOpenError, Path: path, Err: errors.Errorf("%s is a directory", path)}
	}

	frame, err := afero.ReadAll(f)
	if err != nil {
		return nil, fail(FileReadError, errors.Wrap(err, "Failed to read frame file"))
	}
	return frame, nil
}

// describe names the layers gopacket finds in the frame, assuming it starts
// with an Ethernet header. Only used for tracing.
func describe(frame []byte) string {
	p := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.NoCopy)
	names := make([]string, 0, 4)
	for _, l := range p.Layers() {
		names = append(names, l.LayerType().String())
	}
	return strings.Join(names, "/")
}

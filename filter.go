package main

import (
	"github.com/friendsofgo/errors"
	"golang.org/x/net/bpf"
)

// dropAll accepts zero bytes of every packet. The socket only ever sends,
// so nothing received on the interface needs to be queued for it.
var dropAll = []bpf.Instruction{
	bpf.RetConstant{Val: 0},
}

func inboundFilter() ([]bpf.RawInstruction, error) {
	raw, err := bpf.Assemble(dropAll)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to assemble inbound filter")
	}
	return raw, nil
}

package main

import (
	"flag"
	"io"
	"strings"
	"unicode"

	"github.com/friendsofgo/errors"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

// ifNameSize is IFNAMSIZ from <net/if.h>, including the trailing NUL.
const ifNameSize = 16

// Invocation is what the command line asks for.
type Invocation struct {
	// File holds the frame to send
	File string
	// Interface to bind the raw socket to
	Interface string
	// MetricsFile, if set, receives the metrics in text format after the run
	MetricsFile string
}

// ParseInvocation reads the process arguments, args[0] being the program
// name. The frame file and the interface are always the last two arguments.
// Anything between the program name and those two is scanned for optional
// flags and otherwise ignored, parse errors included.
func ParseInvocation(args []string) (*Invocation, error) {
	if len(args) < 3 {
		return nil, fail(UsageError, errors.Errorf("expected 2 arguments, got %d", len(args)-1))
	}
	inv := &Invocation{
		File:      args[len(args)-2],
		Interface: args[len(args)-1],
	}

	fs := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.StringVar(&inv.MetricsFile, "metrics-file", "", "write metrics in text exposition format to this file")

	// Only the verbosity is taken from klog; its file output flags are not exposed.
	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlag(klogFlags.Lookup("v"))

	if err := fs.Parse(args[1 : len(args)-2]); err != nil {
		klog.V(1).InfoS("Ignoring leading arguments", "err", err)
	}

	if err := checkPath(inv.File); err != nil {
		return nil, fail(UsageError, err)
	}
	if err := checkInterfaceName(inv.Interface); err != nil {
		return nil, fail(UsageError, err)
	}
	return inv, nil
}

func checkPath(path string) error {
	if path == "" {
		return errors.New("empty file path")
	}
	if strings.IndexByte(path, 0) >= 0 {
		return errors.New("file path contains a NUL byte")
	}
	return nil
}

// checkInterfaceName applies the same rules as the kernel's dev_valid_name.
func checkInterfaceName(name string) error {
	if name == "" {
		return errors.New("empty interface name")
	}
	if len(name) >= ifNameSize {
		return errors.Errorf("interface name %q longer than %d bytes", name, ifNameSize-1)
	}
	if name == "." || name == ".." {
		return errors.Errorf("invalid interface name %q", name)
	}
	for _, r := range name {
		if r == '/' || r == ':' || unicode.IsSpace(r) {
			return errors.Errorf("invalid character %q in interface name", r)
		}
	}
	return nil
}

package main

import (
	"os"
	"os/signal"
	"syscall"

	"k8s.io/klog/v2"
)

// exitOnSignal aborts the run on the first signal; descriptors are left to the OS.
func exitOnSignal(sig <-chan os.Signal, exit func(int)) {
	<-sig
	klog.Flush()
	exit(1)
}

func main() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go exitOnSignal(sig, os.Exit)

	code := NewTransmitter(os.Stderr).Run(os.Args)
	klog.Flush()
	os.Exit(code)
}

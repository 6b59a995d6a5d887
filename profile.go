package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	E "github.com/sagernet/sing/common/exceptions"
)

// startCPUProfile writes a cpu profile to fn until the returned func is
// called. An empty fn does nothing.
func startCPUProfile(fn string) (func(), error) {
	if fn == "" {
		return func() {}, nil
	}
	f, err := os.Create(fn)
	if err != nil {
		return nil, E.Cause(err, "could not create CPU profile")
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, E.Cause(err, "could not start CPU profile")
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func writeMemProfile(fn string) error {
	if fn == "" {
		return nil
	}
	f, err := os.Create(fn)
	if err != nil {
		return E.Cause(err, "could not create memory profile")
	}
	defer f.Close()
	runtime.GC() // get up-to-date statistics
	if err := pprof.WriteHeapProfile(f); err != nil {
		return E.Cause(err, "could not write memory profile")
	}
	return nil
}

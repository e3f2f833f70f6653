package pmergesort

import "runtime"

// CPUProbe reports how many goroutines a parallel call should use. It is
// the external collaborator spec.md leaves unspecified beyond "num_workers()
// returns the usable CPU count"; callers needing GOMAXPROCS-aware or
// cgroup-aware counts (container limits runtime.NumCPU doesn't see) can
// supply their own via Config.Probe.
type CPUProbe interface {
	NumWorkers() int
}

type defaultProbe struct{}

func (defaultProbe) NumWorkers() int { return runtime.NumCPU() }

// DefaultProbe is the CPUProbe used when Config.Probe is nil.
var DefaultProbe CPUProbe = defaultProbe{}

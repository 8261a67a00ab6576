package transform

import (
	"fmt"
	"strings"
)

// Engine selects a transform implementation.
type Engine int

const (
	EngineRecursive Engine = iota
	EngineDirect
	EnginePlanned
)

func (e Engine) String() string {
	switch e {
	case EngineRecursive:
		return "recursive"
	case EngineDirect:
		return "direct"
	case EnginePlanned:
		return "planned"
	default:
		return "unknown"
	}
}

// ParseEngine resolves an engine by name. The empty string selects
// [EngineRecursive].
func ParseEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "recursive", "fft", "":
		return EngineRecursive, nil
	case "direct", "dft":
		return EngineDirect, nil
	case "planned", "plan":
		return EnginePlanned, nil
	default:
		return 0, fmt.Errorf("transform: unknown engine %q", name)
	}
}

// Transform runs the engine on x. Options are ignored by [EngineDirect].
func (e Engine) Transform(x []complex128, opts ...Option) ([]complex128, error) {
	switch e {
	case EngineRecursive:
		return Recursive(x, opts...), nil
	case EngineDirect:
		return Direct(x), nil
	case EnginePlanned:
		return Planned(x, opts...)
	default:
		return nil, fmt.Errorf("transform: unknown engine %d", int(e))
	}
}

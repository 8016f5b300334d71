package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/ballista/internal/engine"
)

// DefaultName is the scheme the flight integrator uses when none is chosen.
const DefaultName = "semieuler"

var factories = map[string]func() engine.Integrator{
	"semieuler": func() engine.Integrator { return NewSemiImplicitEuler() },
	"euler":     func() engine.Integrator { return NewEuler() },
	"rk4":       func() engine.Integrator { return NewRK4() },
}

func New(name string) (engine.Integrator, error) {
	fn, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

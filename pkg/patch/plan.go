package patch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownDependency is returned when a patch depends on a name that
	// is neither registered nor recorded.
	ErrUnknownDependency = errors.New("unknown dependency")
	// ErrDependencyCycle is returned when dependencies form a cycle.
	ErrDependencyCycle = errors.New("dependency cycle")
)

// plan orders the pending entries: schema before data, dependencies first,
// registration order otherwise. applied holds every recorded name.
func plan(reg *Registry, pending []entry, applied map[string]bool) ([]entry, error) {
	isPending := make(map[string]bool, len(pending))
	for _, e := range pending {
		isPending[e.name] = true
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(pending))
	ordered := make([]entry, 0, len(pending))

	var visit func(e entry, path []string) error
	visit = func(e entry, path []string) error {
		switch state[e.name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: %s", ErrDependencyCycle, strings.Join(append(path, e.name), " -> "))
		}
		state[e.name] = visiting
		path = append(path, e.name)

		for _, dep := range e.patch.Dependencies() {
			if applied[dep] {
				continue
			}
			d, ok := reg.lookup(dep)
			if !ok {
				return fmt.Errorf("patch: %s: %w %q", e.name, ErrUnknownDependency, dep)
			}
			if !isPending[dep] {
				continue
			}
			if e.kind == KindSchema && d.kind == KindData {
				return fmt.Errorf("patch: schema patch %s depends on data patch %s", e.name, dep)
			}
			if err := visit(d, path); err != nil {
				return err
			}
		}

		state[e.name] = done
		ordered = append(ordered, e)
		return nil
	}

	for _, kind := range []Kind{KindSchema, KindData} {
		for _, e := range pending {
			if e.kind != kind {
				continue
			}
			if err := visit(e, nil); err != nil {
				return nil, err
			}
		}
	}

	return ordered, nil
}

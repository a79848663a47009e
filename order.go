// FILE: lixenwraith/optconfig/order.go
package optconfig

import (
	"fmt"
	"strings"
)

// resolutionOrder sorts fields so every option is resolved after the options
// its value functions read. Among options that are ready at the same time the
// declaration order is kept, so without dependencies the order is unchanged.
func resolutionOrder(fields []optionField, deps func(option string) []string) ([]optionField, error) {
	position := make(map[string]int, len(fields))
	for i, f := range fields {
		position[f.name] = i
	}

	indegree := make([]int, len(fields))
	dependents := make([][]int, len(fields))
	for i, f := range fields {
		if deps == nil {
			break
		}
		for _, dep := range deps(f.name) {
			j, ok := position[dep]
			if !ok {
				return nil, fmt.Errorf("%w: option %q depends on unknown option %q", ErrInvalidOption, f.name, dep)
			}
			if j == i {
				return nil, fmt.Errorf("%w: option %q depends on itself", ErrDependencyCycle, f.name)
			}
			dependents[j] = append(dependents[j], i)
			indegree[i]++
		}
	}

	ordered := make([]optionField, 0, len(fields))
	done := make([]bool, len(fields))
	// Repeatedly take the first ready option in declaration order
	for len(ordered) < len(fields) {
		next := -1
		for i := range fields {
			if !done[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			var stuck []string
			for i, f := range fields {
				if !done[i] {
					stuck = append(stuck, f.name)
				}
			}
			return nil, fmt.Errorf("%w: %s", ErrDependencyCycle, strings.Join(stuck, ", "))
		}

		done[next] = true
		ordered = append(ordered, fields[next])
		for _, d := range dependents[next] {
			indegree[d]--
		}
	}
	return ordered, nil
}

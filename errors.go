// FILE: lixenwraith/optconfig/errors.go
package optconfig

import "errors"

var (
	// ErrUnknownFormat is returned when a store file format cannot be determined
	ErrUnknownFormat = errors.New("unknown store format")

	// ErrDependencyCycle is returned when value functions depend on each other in a cycle
	ErrDependencyCycle = errors.New("option dependency cycle")

	// ErrInvalidOption is returned for malformed option declarations or unknown option names
	ErrInvalidOption = errors.New("invalid option")
)

package orders

import (
	"fmt"
	"strings"
)

// ValidationError collects every rule an order, or group of legs, breaks.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order: %s", strings.Join(e.Violations, "; "))
}

func (e *ValidationError) add(format string, args ...interface{}) {
	e.Violations = append(e.Violations, fmt.Sprintf(format, args...))
}

func (e *ValidationError) merge(prefix string, other *ValidationError) {
	for _, v := range other.Violations {
		e.Violations = append(e.Violations, prefix+v)
	}
}

// errOrNil keeps a typed nil pointer from turning into a non-nil error.
func (e *ValidationError) errOrNil() error {
	if len(e.Violations) == 0 {
		return nil
	}

	return e
}

package storygen

import "fmt"

// Validator checks a decoded story beyond what the schema can express.
type Validator interface {
	Name() string
	Validate(s *Story) *ValidationError
}

// ValidationError names the validator and what it rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

package recommend

import "fmt"

// NotFoundError indicates the referenced listing id is not in the catalog
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("listing not found: %s", e.ID)
}

// InvalidInputError indicates a missing or out-of-range argument
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

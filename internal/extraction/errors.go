package extraction

import "fmt"

// InsufficientDataError represents an extraction call with no usable content sources
type InsufficientDataError struct {
	Message string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %s", e.Message)
}

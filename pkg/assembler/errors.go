package assembler

import (
	"fmt"
)

// Error found while assembling a source line
type LineError struct {
	// 1-based line number in the source
	Line int
	// Normalized statement of the line
	Source string
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("At line %v: %v (%v)", e.Line, e.Err, e.Source)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

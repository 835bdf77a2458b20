package utils

import (
	"fmt"
)

// Wraps a sentinel error with a formatted detail message, so that errors.Is() still matches the sentinel
func MakeError(err error, detailsBody string, args ...any) error {
	return fmt.Errorf("%w: "+detailsBody, append([]any{err}, args...)...)
}

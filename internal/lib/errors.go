package lib

import "fmt"

// Err wraps err with the operation name: "op: err".
// The original error stays reachable through errors.Is and errors.As.
func Err(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

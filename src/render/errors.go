package render

import (
	"errors"
	"fmt"
)

var ErrUnknownFormat = errors.New("render: unknown output format")

// writeError wraps a failed write to the report destination.
func writeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("render: writing report: %w", err)
}

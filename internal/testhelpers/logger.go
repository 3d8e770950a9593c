// Package testhelpers provides shared test fixtures.
package testhelpers

import "github.com/jonesrussell/omnibar/internal/logger"

// NewTestLogger creates a logger suitable for testing (discards output).
func NewTestLogger() logger.Logger {
	return logger.NewNopLogger()
}

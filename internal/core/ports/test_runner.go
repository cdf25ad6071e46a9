package ports

import (
	"context"

	"go.trai.ch/reqlock/internal/core/domain"
)

// TestRunner runs a project's test suite with coverage enforcement.
type TestRunner interface {
	// Run executes the suite and returns an error carrying the runner's exit status
	// when it fails.
	Run(ctx context.Context, opts domain.CoverageOptions) error
}

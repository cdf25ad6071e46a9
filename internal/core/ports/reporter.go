package ports

import "go.trai.ch/reqlock/internal/core/domain"

// DriftReporter presents a lock drift to the operator.
type DriftReporter interface {
	// ReportDrift writes a diagnostic for the drift. The committed content is always
	// shown before the resolved content.
	ReportDrift(drift *domain.DriftError) error
}

package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for progress output.
// It decouples telemetry collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting events and flush buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error

	// OnPlanEmit is called once the directories of a run are known.
	OnPlanEmit(dirs []string)

	// OnTaskStart is called when work on a directory begins. action describes the
	// work, such as "Checking".
	OnTaskStart(spanID, name, action string, startTime time.Time)

	// OnTaskLog is called when a directory's work emits output.
	OnTaskLog(spanID string, data []byte)

	// OnTaskComplete is called when work on a directory finishes. summary describes
	// a successful outcome; err is nil on success.
	OnTaskComplete(spanID, summary string, endTime time.Time, err error)
}

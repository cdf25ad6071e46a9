package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/reqlock/internal/core/ports"
)

// Bridge is a span processor that turns per-directory lock spans into renderer
// events. The directory and mode come from the span attributes the syncer sets.
type Bridge struct {
	renderer ports.Renderer
}

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

// NewBridge returns a Bridge feeding renderer.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// OnStart reports the directory and what is about to happen to its lock.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.renderer == nil || !s.SpanContext().IsValid() {
		return
	}

	attrs := spanAttrs(s.Attributes())
	b.renderer.OnTaskStart(s.SpanContext().SpanID().String(), attrs.dir(s.Name()), attrs.action(), s.StartTime())
}

// OnEnd reports the outcome. A failed span carries its error as the status
// description.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.renderer == nil || !s.SpanContext().IsValid() {
		return
	}

	var err error
	if status := s.Status(); status.Code == codes.Error {
		desc := status.Description
		if desc == "" {
			desc = "failed"
		}
		err = errors.New(desc)
	}

	attrs := spanAttrs(s.Attributes())
	b.renderer.OnTaskComplete(s.SpanContext().SpanID().String(), attrs.summary(), s.EndTime(), err)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

type spanAttrs []attribute.KeyValue

func (a spanAttrs) get(key string) string {
	for _, kv := range a {
		if string(kv.Key) == key {
			return kv.Value.Emit()
		}
	}
	return ""
}

// dir falls back to the span name for spans started outside the syncer.
func (a spanAttrs) dir(fallback string) string {
	if d := a.get(domain.SpanAttrDir); d != "" {
		return d
	}
	return fallback
}

func (a spanAttrs) action() string {
	switch a.get(domain.SpanAttrMode) {
	case domain.ModeCheck:
		return "Checking " + a.get(domain.SpanAttrLock)
	case domain.ModeWrite:
		return "Regenerating " + a.get(domain.SpanAttrLock)
	default:
		return "Starting"
	}
}

func (a spanAttrs) summary() string {
	switch a.get(domain.SpanAttrMode) {
	case domain.ModeCheck:
		if digest := a.get(domain.SpanAttrResolvedDigest); digest != "" {
			return "Up to date (xxh64:" + digest + ")"
		}
		return "Up to date"
	case domain.ModeWrite:
		return "Regenerated"
	default:
		return "Completed"
	}
}

package telemetry_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqlock/internal/adapters/telemetry"
	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/reqlock/internal/core/ports"
	"go.trai.ch/reqlock/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_SpanLifecycleReachesRenderer(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	var startID, logID, endID string
	gomock.InOrder(
		renderer.EXPECT().OnPlanEmit([]string{"pkgA"}),
		renderer.EXPECT().OnTaskStart(gomock.Any(), "pkgA", "Checking pkgA/requirements-lock.txt", gomock.Any()).
			Do(func(id, _, _ string, _ time.Time) { startID = id }),
		renderer.EXPECT().OnTaskLog(gomock.Any(), []byte("resolving\n")).
			Do(func(id string, _ []byte) { logID = id }),
		renderer.EXPECT().OnTaskComplete(gomock.Any(), "Up to date (xxh64:0123456789abcdef)", gomock.Any(), nil).
			Do(func(id, _ string, _ time.Time, _ error) { endID = id }),
	)

	tracer := telemetry.NewOTelTracer(renderer)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	ctx := context.Background()
	tracer.EmitPlan(ctx, []string{"pkgA"})

	_, span := tracer.Start(ctx, "pkgA",
		ports.WithAttribute(domain.SpanAttrDir, "pkgA"),
		ports.WithAttribute(domain.SpanAttrMode, domain.ModeCheck),
		ports.WithAttribute(domain.SpanAttrLock, "pkgA/requirements-lock.txt"),
	)
	_, err := io.WriteString(span, "resolving\n")
	require.NoError(t, err)
	span.SetAttribute(domain.SpanAttrResolvedDigest, "0123456789abcdef")
	span.End()

	assert.NotEmpty(t, startID)
	assert.Equal(t, startID, logID)
	assert.Equal(t, startID, endID)
}

func TestOTelTracer_RecordErrorFailsTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	var got error
	renderer.EXPECT().OnTaskStart(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	renderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_, _ string, _ time.Time, err error) { got = err })

	tracer := telemetry.NewOTelTracer(renderer)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	_, span := tracer.Start(context.Background(), "pkgB")
	span.RecordError(errors.New("dependency resolution failed"))
	span.RecordError(nil)
	span.End()

	require.Error(t, got)
	assert.Equal(t, "dependency resolution failed", got.Error())
}

func TestOTelTracer_SetAttributeTypes(t *testing.T) {
	tracer := telemetry.NewOTelTracer(nil)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	_, span := tracer.Start(context.Background(), "pkgA", ports.WithAttribute("n", 1))
	for _, v := range []any{"s", 1, int64(2), 3.5, true, []string{"a"}, struct{}{}} {
		span.SetAttribute("k", v)
	}
	span.End()
}

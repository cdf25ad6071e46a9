package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqlock/internal/adapters/telemetry"
)

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	tracer.EmitPlan(ctx, []string{"pkgA"})

	newCtx, span := tracer.Start(ctx, "pkgA")
	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	n, err := span.Write([]byte("data"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("boom"))
	span.End()
}

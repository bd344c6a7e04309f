package telemetry

import (
	"context"
	"ctchen222/tictactoe-engine/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInitOtel_Disabled(t *testing.T) {
	shutdown, err := InitOtel(context.Background(), config.Telemetry{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitOtel_Enabled(t *testing.T) {
	prevTracer := otel.GetTracerProvider()
	prevMeter := otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTracer)
		otel.SetMeterProvider(prevMeter)
	})

	// grpc.NewClient connects lazily, so no collector is needed to build the pipeline.
	shutdown, err := InitOtel(context.Background(), config.Telemetry{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		ServiceName: "tic-tac-toe-test",
	})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)
}

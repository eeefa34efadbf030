package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/log/global"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func TestNewResource(t *testing.T) {
	t.Run("should set the service name attribute", func(t *testing.T) {
		// Act
		res, err := newResource("walletd")

		// Assert
		require.NoError(t, err)
		require.NotNil(t, res)

		found := false
		for _, attr := range res.Attributes() {
			if attr.Key == semconv.ServiceNameKey {
				assert.Equal(t, "walletd", attr.Value.AsString())
				found = true
			}
		}
		assert.True(t, found, "service name attribute not found in resource")
	})

	t.Run("should accept an empty service name", func(t *testing.T) {
		res, err := newResource("")

		require.NoError(t, err)
		assert.NotNil(t, res)
	})
}

func TestLoggerProvider(t *testing.T) {
	t.Run("should be nil before Init", func(t *testing.T) {
		loggerProvider.Store(nil)

		assert.Nil(t, LoggerProvider())
	})
}

func TestInit(t *testing.T) {
	originalMeterProvider := otel.GetMeterProvider()
	originalTracerProvider := otel.GetTracerProvider()
	originalLoggerProvider := global.GetLoggerProvider()
	t.Cleanup(func() {
		otel.SetMeterProvider(originalMeterProvider)
		otel.SetTracerProvider(originalTracerProvider)
		global.SetLoggerProvider(originalLoggerProvider)
	})

	t.Run("should register every provider and clear them on shutdown", func(t *testing.T) {
		// Act
		shutdown, err := Init(context.Background(), "walletd")
		if err != nil {
			// Exporter construction may fail without a collector.
			t.Skipf("telemetry init unavailable: %v", err)
		}

		// Assert
		require.NotNil(t, shutdown)
		assert.NotNil(t, LoggerProvider())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			t.Logf("shutdown returned error without a collector: %v", err)
		}
		assert.Nil(t, LoggerProvider())
	})
}

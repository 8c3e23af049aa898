package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		env     logger.Environment
		level   string
		wantErr bool
	}{
		{name: "development with debug level", env: logger.Development, level: "debug"},
		{name: "production with default level", env: logger.Production, level: ""},
		{name: "production with warn level", env: logger.Production, level: "warn"},
		{name: "invalid level", env: logger.Development, level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.NewLogger(tt.env, tt.level)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestLoggerContext(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	ctx := logger.NewContext(context.Background(), log)

	fromCtx, err := logger.FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, log, fromCtx)

	assert.Same(t, log, logger.Log(ctx))
}

func TestFromContextMissing(t *testing.T) {
	_, err := logger.FromContext(context.Background())
	require.ErrorIs(t, err, logger.ErrLoggerNotFound)
}

func TestLogFallback(t *testing.T) {
	// Без логгера в контексте и глобального логгера должен вернуться fallback.
	log := logger.Log(context.Background())
	assert.NotNil(t, log)
	assert.NotPanics(t, func() {
		log.Debug(context.Background(), "fallback message")
	})
}

func TestInitGlobalLoggerWithLevel(t *testing.T) {
	t.Cleanup(func() {
		logger.SetGlobalLogger(nil)
	})

	t.Run("invalid level", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		err := logger.InitGlobalLoggerWithLevel(logger.Development, "verbose")
		require.ErrorIs(t, err, logger.ErrInitGlobalLogger)
	})

	t.Run("initializes global logger", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		require.NoError(t, logger.InitGlobalLoggerWithLevel(logger.Development, "debug"))
		assert.NotNil(t, logger.Log(context.Background()))
	})

	t.Run("does not replace existing global logger", func(t *testing.T) {
		existing, err := logger.NewLogger(logger.Development, "info")
		require.NoError(t, err)
		logger.SetGlobalLogger(existing)

		require.NoError(t, logger.InitGlobalLoggerWithLevel(logger.Production, "warn"))
		assert.Same(t, existing, logger.Log(context.Background()))
	})
}

func TestLoggerWithRequestID(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	t.Run("without request id returns same logger", func(t *testing.T) {
		assert.Same(t, log, log.WithRequestID(context.Background()))
	})

	t.Run("with request id attaches field", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-123")

		withID := log.WithRequestID(ctx)
		require.NotNil(t, withID)
		assert.NotSame(t, log, withID)
		assert.NotPanics(t, func() {
			withID.Info(ctx, "request scoped message")
		})
	})
}

func TestRequestIDContext(t *testing.T) {
	ctx := logger.NewRequestIDContext(context.Background(), "req-123")

	id, ok := logger.GetRequestID(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-123", id)

	t.Run("empty request id is generated", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")
		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})
}

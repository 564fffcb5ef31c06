package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	useCore("todo-api-test", core)
	t.Cleanup(func() { Init("", "info") })
	return logs
}

func TestHelpers(t *testing.T) {
	logs := observe(t)

	Info("typed", zap.Int64("todo_id", 7))
	Infow("sugared", "port", "8080")
	Warnf("key %s ignored", "app.x")
	Errorw("failed", "timeout", "10s")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, "typed", entries[0].Message)
	assert.Equal(t, int64(7), entries[0].ContextMap()["todo_id"])
	assert.Equal(t, "todo-api-test", entries[0].ContextMap()["logName"])

	assert.Equal(t, "8080", entries[1].ContextMap()["port"])
	assert.Equal(t, "key app.x ignored", entries[2].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "10s", entries[3].ContextMap()["timeout"])
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel("info") })

	SetLevel("error")
	assert.False(t, level.Enabled(zapcore.WarnLevel))
	assert.True(t, level.Enabled(zapcore.ErrorLevel))

	SetLevel("not-a-level")
	assert.True(t, level.Enabled(zapcore.InfoLevel))
	assert.False(t, level.Enabled(zapcore.DebugLevel))
}

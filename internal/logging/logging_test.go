package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() {
		SetLogger(nil)
		SetTraceEnabled(false)
	})
	return logs
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	logs := observe(t)
	SetTraceEnabled(false)
	Trace("menu.open", map[string]interface{}{"level": 1})
	require.Zero(t, logs.Len())
}

func TestTraceEnabledRecordsPayload(t *testing.T) {
	logs := observe(t)
	SetTraceEnabled(true)
	Trace("menu.open", map[string]interface{}{"level": 1})
	entries := logs.FilterMessage("menu.open").All()
	require.Len(t, entries, 1)
	require.Equal(t, map[string]interface{}{"level": 1}, entries[0].ContextMap()["payload"])
}

func TestErrorIgnoresNil(t *testing.T) {
	logs := observe(t)
	Error(nil)
	require.Zero(t, logs.Len())
	Error(errors.New("boom"))
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func sinkOpen() bool {
	mu.Lock()
	defer mu.Unlock()
	return closeSink != nil
}

func TestConfigureClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { Configure("") })
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "nested", "second.log")

	Configure(first)
	Error(errors.New("first failure"))
	require.True(t, sinkOpen())

	Configure(second)
	require.False(t, sinkOpen(), "previous log file left open")
	data, err := os.ReadFile(first)
	require.NoError(t, err)
	require.Contains(t, string(data), "first failure")

	Error(errors.New("second failure"))
	require.True(t, sinkOpen())
	data, err = os.ReadFile(second)
	require.NoError(t, err)
	require.Contains(t, string(data), "second failure")
	require.NotContains(t, string(data), "first failure")
}

func TestSetLoggerReleasesOwnedFile(t *testing.T) {
	t.Cleanup(func() { Configure("") })
	Configure(filepath.Join(t.TempDir(), "owned.log"))
	Error(errors.New("boom"))
	require.True(t, sinkOpen())

	logs := observe(t)
	require.False(t, sinkOpen())
	Error(errors.New("observed"))
	require.Equal(t, 1, logs.Len())
}

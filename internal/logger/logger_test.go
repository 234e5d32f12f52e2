package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, v Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	Use(zap.New(core))
	SetVerbosity(int(v))
	t.Cleanup(func() { SetVerbosity(int(Info)) })
	return logs
}

func TestVerbosityGating(t *testing.T) {
	logs := observe(t, Info)

	Errorf("e %d", 1)
	Warnf("w")
	Infof("i")
	Debugf("d")
	Tracef("t")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, "e 1", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
}

func TestTraceWritesAtDebug(t *testing.T) {
	logs := observe(t, Trace)

	Tracef("fine %s", "grained")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "fine grained", entries[0].Message)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"error": Error, "WARN": Warn, "": Info, "debug": Debug, "trace": Trace} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pricer.log")
	require.NoError(t, Init(Config{Level: "debug", Output: "file", FilePath: path, MaxSize: 1}))
	t.Cleanup(func() {
		SetVerbosity(int(Info))
		Use(zap.NewNop())
	})

	Debugf("written to %s", "file")
	require.NoError(t, Sync())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "written to file")
}

func TestInitRejectsBadConfig(t *testing.T) {
	assert.Error(t, Init(Config{Level: "loud"}))
	assert.Error(t, Init(Config{Output: "file"}))
	assert.Error(t, Init(Config{Output: "syslog"}))
}

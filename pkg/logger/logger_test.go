package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestUninitializedLoggerIsNoop(t *testing.T) {
	l := New()
	assert.NotPanics(t, func() {
		l.Info("hello")
		l.Warnf("x=%d", 1)
		l.LogRender("pan", 24, errors.New("boom"))
		l.LogExport("/tmp", 3, time.Second, nil)
		assert.NoError(t, l.RotateIfNeeded())
		assert.NoError(t, l.Close())
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestFileLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "icons.log")

	l := New()
	require.NoError(t, l.Initialize(Config{LogPath: path, Level: "debug"}))
	assert.Equal(t, zapcore.DebugLevel, l.Level())

	l.LogRender("zoom_in", 32, nil)
	l.LogRender("undo", 32, errors.New("parse failed"))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"icon":"zoom_in"`)
	assert.Contains(t, lines[0], `"size_px":32`)
	assert.Contains(t, lines[1], `"level":"warn"`)
	assert.Contains(t, lines[1], "parse failed")
}

func TestRotate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icons.log")

	l := New()
	require.NoError(t, l.Initialize(Config{LogPath: path, Level: "info", MaxSize: 1, MaxBackups: 3}))
	l.Info("first")

	require.NoError(t, l.RotateIfNeeded())
	l.Info("second")
	require.NoError(t, l.Close())

	backup, err := os.ReadFile(path + ".1")
	require.NoError(t, err)
	assert.Contains(t, string(backup), "first")

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(current), "second")
	assert.NotContains(t, string(current), "first")
}

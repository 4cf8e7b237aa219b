package errorutil

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLogAndWrap(t *testing.T) {
	var buf bytes.Buffer
	base := errors.New("boom")

	err := LogAndWrap(newTestLogger(&buf), "load config", base, ConfigContext("a.toml")...)
	require.Error(t, err)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "load config: boom", err.Error())
	assert.Contains(t, buf.String(), `msg="load config failed"`)
	assert.Contains(t, buf.String(), "config_file=a.toml")

	assert.NoError(t, LogAndWrap(newTestLogger(&buf), "noop", nil))
	assert.ErrorIs(t, LogAndWrap(nil, "no logger", base), base)
}

func TestLogWarning(t *testing.T) {
	var buf bytes.Buffer
	LogWarning(newTestLogger(&buf), "parse line", errors.New("bad"), InputContext("foo", "YYYY")...)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "input=foo")
	assert.Contains(t, out, "template=YYYY")
}

func TestExecuteWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	require.NoError(t, ExecuteWithLogging(logger, "check values", func() error { return nil }, FileContext("in.txt")...))
	assert.Contains(t, buf.String(), `msg="Completed check values"`)
	assert.Contains(t, buf.String(), "duration=")

	buf.Reset()
	err := ExecuteWithLogging(logger, "check values", func() error { return errors.New("failed") })
	assert.EqualError(t, err, "check values: failed")
	assert.Contains(t, buf.String(), "level=ERROR")

	assert.Nil(t, FileContext(""))
	assert.Nil(t, ConfigContext(""))
	assert.Len(t, InputContext("x", ""), 1)
}

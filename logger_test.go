package scanio

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.WithPath("a.csv").WithColumns([]int{0, 2}).WithWorkers(4).Info("hello")
	assert.Contains(t, buf.String(), "path=a.csv")
	assert.Contains(t, buf.String(), "columns=\"[0 2]\"")
	assert.Contains(t, buf.String(), "workers=4")

	buf.Reset()
	l.LogRead(context.Background(), "a.csv", 3, 64, time.Millisecond, nil)
	assert.Contains(t, buf.String(), "read completed")

	buf.Reset()
	l.LogRead(context.Background(), "a.csv", 0, 0, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "read failed")

	buf.Reset()
	l.LogOpen(context.Background(), "fixed", "a.col", 7, nil)
	assert.Contains(t, buf.String(), "column opened")
	assert.Contains(t, buf.String(), "length=7")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestNewLogger_DefaultHandler(t *testing.T) {
	l := NewLogger(nil)
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}

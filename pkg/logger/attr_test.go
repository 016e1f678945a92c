package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/a11ykit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestSurfaceID(t *testing.T) {
	attr := logger.SurfaceID("status")
	require.Equal(t, "surface_id", attr.Key)
	assert.Equal(t, "status", attr.Value.String())
}

func TestAnnouncementID(t *testing.T) {
	attr := logger.AnnouncementID("save-toast")
	require.Equal(t, "announcement_id", attr.Key)
	assert.Equal(t, "save-toast", attr.Value.String())
}

func TestPriority(t *testing.T) {
	attr := logger.Priority("assertive")
	require.Equal(t, "priority", attr.Key)
	assert.Equal(t, "assertive", attr.Value.Any())

	empty := logger.Priority(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestTemplate(t *testing.T) {
	attr := logger.Template("toast")
	require.Equal(t, "template", attr.Key)
	assert.Equal(t, "toast", attr.Value.String())
}

func TestCount(t *testing.T) {
	attr := logger.Count(3)
	require.Equal(t, "count", attr.Key)
	assert.Equal(t, int64(3), attr.Value.Int64())
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(250 * time.Millisecond)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, 250*time.Millisecond, attr.Value.Duration())
}

func TestComponent(t *testing.T) {
	attr := logger.Component("announcer")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "announcer", attr.Value.String())
}

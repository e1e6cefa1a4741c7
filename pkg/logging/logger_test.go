package logging

import (
	"testing"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildsLoggerForKnownFormats(t *testing.T) {
	for _, format := range []string{"", "console", "json", "pretty", "JSON "} {
		root, err := New("debug", format)
		require.NoError(t, err, format)
		require.NotNil(t, root)

		Named(root, "blog.test").Debug("logger.initialised", "format", format)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New("info", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestNormalizeLevel(t *testing.T) {
	assert.Equal(t, glog.Warn, normalizeLevel("WARNING"))
	assert.Equal(t, glog.Debug, normalizeLevel(" debug "))
	assert.Equal(t, "", normalizeLevel("loud"))
}

func TestNamedFallsBackToRoot(t *testing.T) {
	root, err := New("info", "console")
	require.NoError(t, err)

	assert.NotNil(t, Named(root, "  "))
	assert.NotNil(t, Named(root, "blog.http"))
}

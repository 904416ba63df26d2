package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestLogger(t *testing.T) {
	logger, buf := NewTestLogger(LevelInfo)
	child := logger.With(RunIDKey, "abc")

	logger.Debug("hidden")
	child.Info("Data encoded", SamplesKey, 8124)
	child.Error("failed", errors.New("boom"))

	entries, err := logger.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0][RunIDKey])
	assert.Equal(t, "boom", entries[1][ErrAttrKey])

	assert.True(t, logger.ContainsMessage("Data encoded"))
	assert.False(t, logger.ContainsMessage("hidden"))
	assert.True(t, logger.ContainsField(SamplesKey, float64(8124)))
	assert.False(t, logger.ContainsField(SamplesKey, 8124), "JSON numbers decode as float64")

	entry, ok := logger.Entry("failed")
	require.True(t, ok)
	assert.Equal(t, "ERROR", entry["level"])
	_, ok = logger.Entry("Data")
	assert.False(t, ok, "Entry matches whole messages")
	assert.Equal(t, 1, logger.CountLevel(LevelError))
	assert.Zero(t, logger.CountLevel(LevelWarn))

	logger.Clear()
	assert.Empty(t, buf.String())
}

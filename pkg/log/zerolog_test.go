package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/YuminosukeSato/arules/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestZerologLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo).With(RunIDKey, "run-1")

	logger.Debug("hidden")
	logger.Info("Frequent itemsets mined", FrequentKey, 12, MinSupportKey, 0.3)
	logger.Error("Rule generation invariant violated", errors.New("bad subset"), ErrorCodeKey, ErrorInvariant)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "Frequent itemsets mined", entries[0]["message"])
	assert.Equal(t, "run-1", entries[0][RunIDKey])
	assert.Equal(t, float64(12), entries[0][FrequentKey])
	assert.Equal(t, 0.3, entries[0][MinSupportKey])

	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "bad subset", entries[1]["error"])
	assert.Equal(t, ErrorInvariant, entries[1][ErrorCodeKey])
}

func TestZerologLogger_Enabled(t *testing.T) {
	logger := NewZerologLogger(&bytes.Buffer{}, LevelWarn)
	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, LevelInfo))
	assert.True(t, logger.Enabled(ctx, LevelWarn))
	assert.True(t, logger.Enabled(ctx, LevelError))
}

func TestZerologProvider(t *testing.T) {
	var buf bytes.Buffer
	p := NewZerologProvider(&buf, LevelInfo)
	p.GetLoggerWithName("apriori").Info("hello")
	p.SetLevel(LevelError)
	p.GetLogger().Warn("dropped")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "apriori", entries[0][ComponentKey])
}

func TestPackageProvider(t *testing.T) {
	tp, buf := NewTestLoggerProvider(LevelDebug)
	SetProvider(tp)
	t.Cleanup(func() { SetProvider(NewZerologProvider(&bytes.Buffer{}, LevelInfo)) })

	GetLoggerWithName("pipeline").Debug("stage done", StageKey, StageRank)
	GetLogger().Info("plain")
	assert.Contains(t, buf.String(), `"arules.component":"pipeline"`)
	assert.Contains(t, buf.String(), "plain")

	SetLevel(LevelWarn)
	GetLogger().Info("suppressed")
	assert.NotContains(t, buf.String(), "suppressed")
}

func TestInstallWarningHook(t *testing.T) {
	t.Cleanup(func() { errors.SetZerologWarnFunc(nil) })

	t.Run("zerolog keeps structured fields", func(t *testing.T) {
		var buf bytes.Buffer
		InstallWarningHook(NewZerologLogger(&buf, LevelInfo))
		errors.Warn(errors.NewNoRulesWarning(0.9, 42))

		entries := decodeLines(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "warn", entries[0]["level"])
		assert.Equal(t, "NoRulesWarning", entries[0]["type"])
		assert.Equal(t, 0.9, entries[0]["min_confidence"])
		assert.Equal(t, float64(42), entries[0]["itemsets"])
	})

	t.Run("other loggers get the error type", func(t *testing.T) {
		logger, _ := NewTestLogger(LevelDebug)
		InstallWarningHook(logger)
		errors.Warn(errors.NewNoFrequentItemsetsWarning(0.5, 8124))

		assert.True(t, logger.ContainsMessage("no frequent itemsets found"))
		assert.True(t, logger.ContainsField(ErrorTypeKey, "NoFrequentItemsetsWarning"))
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"info", LevelInfo, true},
		{"", LevelInfo, true},
		{"warn", LevelWarn, true},
		{"error", LevelError, true},
		{"verbose", LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", Level(3).String())
}

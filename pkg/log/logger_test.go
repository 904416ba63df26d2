package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	arerrors "github.com/YuminosukeSato/arules/pkg/errors"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLogLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"info":  slog.LevelInfo,
		"debug": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ToLogLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ToLogLevel("loud")
	assert.Error(t, err)
	assert.Error(t, SetupLogger("loud"))
}

func TestErrFmtHandler_AddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil)))

	logger.ErrorContext(context.Background(), "mine failed", ErrAttr(errors.New("empty input")))
	assert.Contains(t, buf.String(), `"error":"empty input"`)
	assert.Contains(t, buf.String(), StacktraceAttrKey)

	buf.Reset()
	logger.Info("plain", "k", "v")
	assert.NotContains(t, buf.String(), StacktraceAttrKey)

	buf.Reset()
	logger.With("run", 1).WithGroup("g").Info("grouped")
	assert.Contains(t, buf.String(), "grouped")
}

func TestErrFmtHandler_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantStage string
		wantCode  string
	}{
		{
			name:      "configuration",
			err:       arerrors.NewConfigurationError("min_support", "must be in (0, 1]", 0.0),
			wantStage: "",
			wantCode:  ErrorInvalidConfig,
		},
		{
			name:      "empty input in encode stage",
			err:       arerrors.NewStageError(StageEncode, arerrors.NewEmptyInputError("OneHotEncoder.Fit", 0, 0)),
			wantStage: StageEncode,
			wantCode:  ErrorEmptyData,
		},
		{
			name:      "invariant in generate stage",
			err:       arerrors.NewStageError(StageGenerate, arerrors.NewInvariantViolation("subset missing")),
			wantStage: StageGenerate,
			wantCode:  ErrorInvariant,
		},
		{
			name: "plain",
			err:  errors.New("boom"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil)))
			logger.Error("failed", ErrAttr(tt.err))

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			if tt.wantStage == "" {
				assert.NotContains(t, entry, StageKey)
			} else {
				assert.Equal(t, tt.wantStage, entry[StageKey])
			}
			if tt.wantCode == "" {
				assert.NotContains(t, entry, ErrorCodeKey)
			} else {
				assert.Equal(t, tt.wantCode, entry[ErrorCodeKey])
			}
		})
	}
}

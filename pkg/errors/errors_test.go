package errors

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("min_support", "must be in (0, 1]", 1.5)
	assert.Equal(t, "arules: invalid configuration for 'min_support': must be in (0, 1] (got: 1.5)", err.Error())

	wrapped := Wrap(err, "pipeline.Run")
	var ce *ConfigurationError
	require.True(t, As(wrapped, &ce))
	assert.Equal(t, "min_support", ce.ParamName)
	assert.Equal(t, 1.5, ce.Value)
}

func TestEmptyInputError(t *testing.T) {
	err := NewEmptyInputError("OneHotEncoder.Fit", 0, 22)
	assert.Contains(t, err.Error(), "empty input (0 rows, 22 attributes)")
	assert.True(t, Is(err, ErrEmptyData))
	assert.True(t, Is(Wrapf(err, "stage %d", 1), ErrEmptyData))
	assert.False(t, Is(NewValueError("op", "x"), ErrEmptyData))
}

func TestStageError(t *testing.T) {
	inner := NewConfigurationError("max_len", "must be at least 1", 0)
	err := NewStageError("mine", inner)
	assert.Contains(t, err.Error(), "stage mine")

	var se *StageError
	require.True(t, As(err, &se))
	assert.Equal(t, "mine", se.Stage)

	var ce *ConfigurationError
	assert.True(t, As(err, &ce), "StageError must unwrap to its cause")

	ctxErr := NewStageError("prune", context.Canceled)
	assert.ErrorIs(t, ctxErr, context.Canceled)
}

func TestOtherErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not fitted", NewNotFittedError("OneHotEncoder", "Transform"), "not fitted yet. Call Fit() before using Transform()"},
		{"dimension rows", NewDimensionError("op", 3, 2, 0), "axis 0 (rows). Expected 3, got 2"},
		{"dimension attributes", NewDimensionError("op", 3, 2, 1), "axis 1 (attributes)"},
		{"value", NewValueError("OneHotEncoder.Transform", `unseen value "x"`), `OneHotEncoder.Transform: unseen value "x"`},
		{"newf", Newf("level %d", 3), "level 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.err.Error(), tt.want)
		})
	}
}

func TestInvariantViolation(t *testing.T) {
	err := NewInvariantViolation("subset %s missing", "{1,2}")
	assert.True(t, IsInvariantViolation(err))
	assert.True(t, IsInvariantViolation(NewStageError("generate", err)))
	assert.False(t, IsInvariantViolation(New("plain")))
	assert.Contains(t, err.Error(), "subset {1,2} missing")
}

func TestWarn(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	t.Cleanup(func() { SetWarningHandler(func(error) {}) })

	Warn(NewNoFrequentItemsetsWarning(0.9, 100))
	Warn(NewNoRulesWarning(0.95, 7))
	require.Len(t, got, 2)
	assert.Equal(t, "no frequent itemsets found with min_support=0.9 over 100 samples. Try lowering min_support.", got[0].Error())
	assert.Equal(t, "no rules found meeting min_confidence=0.95 from 7 frequent itemsets", got[1].Error())

	var zl []error
	SetZerologWarnFunc(func(w error) { zl = append(zl, w) })
	Warn(NewNoRulesWarning(0.5, 1))
	SetZerologWarnFunc(nil)
	Warn(NewNoRulesWarning(0.5, 2))
	assert.Len(t, zl, 1)
	assert.Len(t, got, 3)
}

func TestSafeExecute(t *testing.T) {
	err := SafeExecute("apriori.Mine", func() error { panic("index out of range") })
	var pe *PanicError
	require.True(t, As(err, &pe))
	assert.Equal(t, "apriori.Mine", pe.Operation)
	assert.Contains(t, pe.Error(), "panic in apriori.Mine: index out of range")
	assert.Contains(t, pe.String(), "Stack trace:")
	assert.Nil(t, pe.Unwrap())

	cause := fmt.Errorf("inner")
	err = SafeExecute("rules.Generate", func() error { panic(cause) })
	assert.ErrorIs(t, err, cause)

	assert.NoError(t, SafeExecute("ok", func() error { return nil }))
	sentinel := New("plain")
	assert.Equal(t, sentinel, SafeExecute("err", func() error { return sentinel }))
}

func TestRecover_KeepsOriginalError(t *testing.T) {
	original := New("original")
	f := func() (err error) {
		defer Recover(&err, "stage")
		err = original
		panic("late")
	}
	err := f()
	assert.ErrorIs(t, err, original)
	assert.Contains(t, err.Error(), "panic in stage: late")
	assert.False(t, IsPanic(original))
	assert.True(t, IsPanic(SafeExecute("stage", func() error { panic("x") })))
}

func TestNumericalChecks(t *testing.T) {
	assert.NoError(t, CheckScalar("lift", 1.2))
	assert.True(t, IsInvariantViolation(CheckScalar("lift", math.Inf(1))))
	assert.NoError(t, CheckUnitInterval("rules", "confidence", 1))
	assert.True(t, IsInvariantViolation(CheckUnitInterval("rules", "confidence", 1.01)))

	for v, want := range map[float64]bool{0: false, 0.0001: true, 1: true, 1.5: false, -1: false} {
		assert.Equal(t, want, InOpenUnitInterval(v), "%g", v)
	}
}

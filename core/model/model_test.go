package model

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/YuminosukeSato/arules/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type savedRule struct {
	Antecedents []string
	Consequents []string
	Support     float64
}

func TestSaveLoad(t *testing.T) {
	rules := []savedRule{
		{Antecedents: []string{"odor=foul"}, Consequents: []string{"poisonous=poisonous"}, Support: 0.26},
		{Antecedents: []string{"odor=none", "gill-size=broad"}, Consequents: []string{"poisonous=edible"}, Support: 0.38},
	}
	path := filepath.Join(t.TempDir(), "rules.gob")
	require.NoError(t, Save(path, KindRules, rules))

	var got []savedRule
	require.NoError(t, Load(path, KindRules, &got))
	assert.Equal(t, rules, got)

	assert.Error(t, Load(filepath.Join(t.TempDir(), "missing.gob"), KindRules, &got))
	assert.Error(t, Save(filepath.Join(t.TempDir(), "no", "such", "dir.gob"), KindRules, rules))
}

func TestDecode_Rejects(t *testing.T) {
	var other bytes.Buffer
	require.NoError(t, Encode(&other, "itemsets", []int{1, 2}))

	tests := []struct {
		name  string
		input *bytes.Buffer
	}{
		{"garbage", bytes.NewBufferString("not gob")},
		{"wrong kind", &other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []savedRule
			assert.Error(t, Decode(tt.input, KindRules, &got))
		})
	}
}

func TestDecode_WrongKindIsValueError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "itemsets", []int{1}))

	var got []savedRule
	err := Decode(&buf, KindRules, &got)
	var ve *errors.ValueError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Message, `"itemsets"`)
}

func TestFitState(t *testing.T) {
	s := NewFitState()
	assert.False(t, s.IsFitted())
	var nf *errors.NotFittedError
	require.True(t, errors.As(s.Require("OneHotEncoder", "Transform"), &nf))
	assert.Equal(t, "Transform", nf.Method)

	attrs := []string{"odor", "poisonous"}
	s.MarkFitted(attrs, 8124)
	attrs[0] = "changed"
	assert.True(t, s.IsFitted())
	assert.NoError(t, s.Require("OneHotEncoder", "Transform"))
	assert.Equal(t, []string{"odor", "poisonous"}, s.Attributes())
	assert.Equal(t, 8124, s.Rows())

	s.Reset()
	assert.False(t, s.IsFitted())
	assert.Empty(t, s.Attributes())
	assert.Zero(t, s.Rows())
}

func TestFitState_CheckSchema(t *testing.T) {
	s := NewFitState()
	s.MarkFitted([]string{"color", "shape"}, 4)

	assert.NoError(t, s.CheckSchema("op", []string{"color", "shape"}))

	var de *errors.DimensionError
	assert.True(t, errors.As(s.CheckSchema("op", []string{"color"}), &de))

	var ve *errors.ValueError
	assert.True(t, errors.As(s.CheckSchema("op", []string{"shape", "color"}), &ve))
}

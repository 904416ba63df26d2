package metrics

import (
	"testing"

	"github.com/YuminosukeSato/arules/dataset"
	"github.com/YuminosukeSato/arules/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeat(pattern []string, n int) []string {
	out := make([]string, 0, len(pattern)*n)
	for i := 0; i < n; i++ {
		out = append(out, pattern...)
	}
	return out
}

func TestContingency(t *testing.T) {
	m, rows, cols, err := Contingency(
		[]string{"p", "e", "e", "p", "e"},
		[]string{"foul", "none", "none", "foul", "almond"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "p"}, rows)
	assert.Equal(t, []string{"almond", "foul", "none"}, cols)
	assert.Equal(t, []float64{1, 0, 2}, m.RawRowView(0))
	assert.Equal(t, []float64{0, 2, 0}, m.RawRowView(1))

	_, _, _, err = Contingency([]string{"a"}, []string{"b", "c"})
	var de *errors.DimensionError
	assert.True(t, errors.As(err, &de))

	_, _, _, err = Contingency(nil, nil)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestCramersV(t *testing.T) {
	tests := []struct {
		name  string
		x, y  []string
		want  float64
		delta float64
	}{
		{
			name:  "perfect 2x2 with continuity correction",
			x:     repeat([]string{"a", "b"}, 50),
			y:     repeat([]string{"c", "d"}, 50),
			want:  1,
			delta: 0.03,
		},
		{
			name:  "perfect 3x3",
			x:     repeat([]string{"a", "b", "c"}, 100),
			y:     repeat([]string{"x", "y", "z"}, 100),
			want:  1,
			delta: 1e-9,
		},
		{
			name:  "independent",
			x:     repeat([]string{"a", "a", "b", "b"}, 25),
			y:     repeat([]string{"c", "d", "c", "d"}, 25),
			want:  0,
			delta: 1e-9,
		},
		{
			name:  "constant column",
			x:     repeat([]string{"a"}, 10),
			y:     repeat([]string{"c", "d"}, 5),
			want:  0,
			delta: 0,
		},
		{
			name:  "single observation",
			x:     []string{"a"},
			y:     []string{"b"},
			want:  0,
			delta: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := CramersV(tt.x, tt.y)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, v, tt.delta)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0+1e-12)
		})
	}
}

func TestAssociationMatrix(t *testing.T) {
	tbl, err := dataset.NewTable([]string{"a", "b", "c"}, nil)
	require.NoError(t, err)
	for i := 0; i < 60; i++ {
		v := []string{"x", "y", "z"}[i%3]
		w := []string{"p", "q"}[(i/3)%2]
		tbl.Rows = append(tbl.Rows, []string{v, v, w})
	}

	m, err := AssociationMatrix(tbl)
	require.NoError(t, err)
	assert.Equal(t, 3, m.SymmetricDim())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, m.At(i, i))
	}
	assert.InDelta(t, 1, m.At(0, 1), 1e-9)
	assert.Equal(t, m.At(0, 2), m.At(2, 0))
	assert.Less(t, m.At(0, 2), 0.5)

	empty, err := dataset.NewTable([]string{"a"}, nil)
	require.NoError(t, err)
	_, err = AssociationMatrix(empty)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

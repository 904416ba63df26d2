package preprocessing

import (
	"testing"

	"github.com/YuminosukeSato/arules/dataset"
	"github.com/YuminosukeSato/arules/itemset"
	"github.com/YuminosukeSato/arules/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorShapeTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.NewTable([]string{"color", "shape"}, [][]string{
		{"red", "round"},
		{"red", "round"},
		{"red", "square"},
		{"blue", "round"},
	})
	require.NoError(t, err)
	return tbl
}

func TestOneHotEncoder_FitTransform(t *testing.T) {
	enc := NewOneHotEncoder()
	assert.False(t, enc.IsFitted())

	tx, err := enc.FitTransform(colorShapeTable(t))
	require.NoError(t, err)
	require.True(t, enc.IsFitted())

	vocab := enc.Vocabulary()
	require.Equal(t, 4, vocab.Len())
	// 属性の順、属性内では値の辞書順
	assert.Equal(t, "color=blue", vocab.Item(0).Label())
	assert.Equal(t, "color=red", vocab.Item(1).Label())
	assert.Equal(t, "shape=round", vocab.Item(2).Label())
	assert.Equal(t, "shape=square", vocab.Item(3).Label())
	assert.Equal(t, []string{"color", "shape"}, enc.Attributes())

	assert.Equal(t, 4, tx.Len())
	assert.Equal(t, 3, tx.ItemCount(1))
	assert.Equal(t, 1, tx.ItemCount(0))
	assert.Equal(t, 2, tx.Count(itemset.New(1, 2)))
	assert.True(t, tx.SameAttribute(0, 1))

	// 各観測は属性ごとにちょうど一つのアイテムを持つ
	for i := 0; i < tx.Len(); i++ {
		assert.Equal(t, 2, tx.Row(i).Len())
	}
}

func TestOneHotEncoder_Errors(t *testing.T) {
	t.Run("not fitted", func(t *testing.T) {
		_, err := NewOneHotEncoder().Transform(colorShapeTable(t))
		var nf *errors.NotFittedError
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("empty rows", func(t *testing.T) {
		tbl, err := dataset.NewTable([]string{"color"}, nil)
		require.NoError(t, err)
		err = NewOneHotEncoder().Fit(tbl)
		var ee *errors.EmptyInputError
		require.True(t, errors.As(err, &ee))
		assert.True(t, errors.Is(err, errors.ErrEmptyData))
	})

	t.Run("nil table", func(t *testing.T) {
		_, err := NewOneHotEncoder().FitTransform(nil)
		assert.True(t, errors.Is(err, errors.ErrEmptyData))
	})

	t.Run("column count mismatch", func(t *testing.T) {
		enc := NewOneHotEncoder()
		require.NoError(t, enc.Fit(colorShapeTable(t)))
		tbl, err := dataset.NewTable([]string{"color"}, [][]string{{"red"}})
		require.NoError(t, err)
		_, err = enc.Transform(tbl)
		var de *errors.DimensionError
		assert.True(t, errors.As(err, &de))
	})

	t.Run("column name mismatch", func(t *testing.T) {
		enc := NewOneHotEncoder()
		require.NoError(t, enc.Fit(colorShapeTable(t)))
		tbl, err := dataset.NewTable([]string{"shape", "color"}, [][]string{{"round", "red"}})
		require.NoError(t, err)
		_, err = enc.Transform(tbl)
		var ve *errors.ValueError
		assert.True(t, errors.As(err, &ve))
	})

	t.Run("unseen value", func(t *testing.T) {
		enc := NewOneHotEncoder()
		require.NoError(t, enc.Fit(colorShapeTable(t)))
		tbl, err := dataset.NewTable([]string{"color", "shape"}, [][]string{{"green", "round"}})
		require.NoError(t, err)
		_, err = enc.Transform(tbl)
		var ve *errors.ValueError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Message, "green")
	})
}

func TestMatrix(t *testing.T) {
	tx, err := NewOneHotEncoder().FitTransform(colorShapeTable(t))
	require.NoError(t, err)

	m := Matrix(tx)
	r, c := m.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)
	// 行3: color=blue, shape=round
	assert.Equal(t, []float64{1, 0, 1, 0}, m.RawRowView(3))
	for i := 0; i < r; i++ {
		sum := 0.0
		for j := 0; j < c; j++ {
			sum += m.At(i, j)
		}
		assert.Equal(t, 2.0, sum)
	}
}

package dataset

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YuminosukeSato/arules/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := "color, shape\nred, round\n blue ,square\n"
	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"color", "shape"}, tbl.Columns)
	assert.Equal(t, [][]string{{"red", "round"}, {"blue", "square"}}, tbl.Rows)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestReadCSV_Ragged(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1\n"))
	assert.Error(t, err)
}

func TestReadHeaderless(t *testing.T) {
	tbl, err := ReadHeaderless(strings.NewReader("p,x,s\ne,b,y\n"), []string{"poisonous", "cap-shape", "cap-surface"})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, "b", tbl.Rows[1][1])

	_, err = ReadHeaderless(strings.NewReader("p,x\n"), []string{"a", "b", "c"})
	assert.Error(t, err)
}

func TestCSV_RoundTripFile(t *testing.T) {
	tbl := sampleTable(t)
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, SaveCSV(path, tbl))

	got, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns, got.Columns)
	assert.Equal(t, tbl.Rows, got.Rows)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl))
	assert.True(t, strings.HasPrefix(buf.String(), "odor,veil-type,poisonous\n"))

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestReadCodebook(t *testing.T) {
	cb, err := ReadCodebook(strings.NewReader("odor:\n  f: foul\n  n: none\n"))
	require.NoError(t, err)
	assert.Equal(t, "foul", cb["odor"]["f"])

	_, err = ReadCodebook(strings.NewReader("odor: [unterminated"))
	assert.Error(t, err)
}

func TestMushroomCodebook(t *testing.T) {
	cb := MushroomCodebook()
	for _, c := range MushroomColumns {
		assert.Contains(t, cb, c)
	}
	assert.Equal(t, "missing", cb["stalk-root"]["?"])
	assert.Equal(t, "no", cb["bruises"]["f"])
}

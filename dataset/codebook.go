package dataset

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"sort"

	"github.com/YuminosukeSato/arules/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Codebook maps, per column, short category codes to descriptive labels.
type Codebook map[string]map[string]string

//go:embed mushroom_codebook.yaml
var mushroomCodebook []byte

// MushroomCodebook returns the UCI Mushroom codebook.
func MushroomCodebook() Codebook {
	cb, err := ReadCodebook(bytes.NewReader(mushroomCodebook))
	if err != nil {
		panic(err)
	}
	return cb
}

// ReadCodebook decodes a YAML codebook of the form
//
//	column:
//	  code: label
func ReadCodebook(r io.Reader) (Codebook, error) {
	var cb Codebook
	if err := yaml.NewDecoder(r).Decode(&cb); err != nil {
		return nil, errors.Wrap(err, "decode codebook")
	}
	return cb, nil
}

// LoadCodebook reads a YAML codebook from path.
func LoadCodebook(path string) (Codebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return ReadCodebook(f)
}

// ApplyCodebook returns a copy of t with codes replaced by their labels.
// Values without a mapping are kept as they are. The second result lists
// codebook columns that t does not have.
func ApplyCodebook(t *Table, cb Codebook) (*Table, []string) {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}

	var missing []string
	for column, mapping := range cb {
		j := t.ColumnIndex(column)
		if j < 0 {
			missing = append(missing, column)
			continue
		}
		for _, row := range out.Rows {
			if label, ok := mapping[row[j]]; ok {
				row[j] = label
			}
		}
	}
	sort.Strings(missing)
	return out, missing
}

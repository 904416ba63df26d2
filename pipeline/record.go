package pipeline

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/arules/itemset"
	"github.com/YuminosukeSato/arules/pkg/errors"
	"github.com/YuminosukeSato/arules/rules"
)

// Record is a rule with its items rendered as "attribute=value" labels.
type Record struct {
	Antecedents   []string `json:"antecedents"`
	Consequents   []string `json:"consequents"`
	Support       float64  `json:"support"`
	Confidence    float64  `json:"confidence"`
	Lift          float64  `json:"lift"`
	AntecedentLen int      `json:"antecedent_len"`
}

// AntecedentString joins the antecedent labels with ", ".
func (r Record) AntecedentString() string {
	return strings.Join(r.Antecedents, ", ")
}

// ConsequentString joins the consequent labels with ", ".
func (r Record) ConsequentString() string {
	return strings.Join(r.Consequents, ", ")
}

// Records reattaches labels to rules, preserving order.
func Records(rs []rules.Rule, vocab *itemset.Vocabulary) []Record {
	out := make([]Record, len(rs))
	for i, r := range rs {
		out[i] = Record{
			Antecedents:   vocab.Labels(r.Antecedent),
			Consequents:   vocab.Labels(r.Consequent),
			Support:       r.Support,
			Confidence:    r.Confidence,
			Lift:          r.Lift,
			AntecedentLen: r.AntecedentLen(),
		}
	}
	return out
}

// RecordColumns is the header written by WriteRecordsCSV.
var RecordColumns = []string{"antecedents", "consequents", "support", "confidence", "lift", "antecedent_len"}

// WriteRecordsCSV writes records as a CSV table with RecordColumns.
func WriteRecordsCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(RecordColumns); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, r := range records {
		row := []string{
			r.AntecedentString(),
			r.ConsequentString(),
			strconv.FormatFloat(r.Support, 'f', -1, 64),
			strconv.FormatFloat(r.Confidence, 'f', -1, 64),
			strconv.FormatFloat(r.Lift, 'f', -1, 64),
			strconv.Itoa(r.AntecedentLen),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "write record")
		}
	}
	cw.Flush()
	return cw.Error()
}

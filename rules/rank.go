package rules

import (
	"sort"
	"strings"

	"github.com/YuminosukeSato/arules/itemset"
)

// Rank returns a copy of rules ordered by support descending, then antecedent
// length ascending. Ties keep their input order.
func Rank(rules []Rule) []Rule {
	return RankBy(rules, nil)
}

// RankBy is Rank with an extra tie-breaker applied after the two primary
// keys. A nil tiebreak keeps input order for ties.
func RankBy(rules []Rule, tiebreak func(a, b Rule) bool) []Rule {
	out := append([]Rule(nil), rules...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Support != b.Support {
			return a.Support > b.Support
		}
		if a.AntecedentLen() != b.AntecedentLen() {
			return a.AntecedentLen() < b.AntecedentLen()
		}
		if tiebreak != nil {
			return tiebreak(a, b)
		}
		return false
	})
	return out
}

// CanonicalTiebreak orders tied rules by their rendered antecedent, then
// consequent, giving a total order independent of generation order.
func CanonicalTiebreak(vocab *itemset.Vocabulary) func(a, b Rule) bool {
	return func(a, b Rule) bool {
		if c := strings.Compare(vocab.Format(a.Antecedent), vocab.Format(b.Antecedent)); c != 0 {
			return c < 0
		}
		return vocab.Format(a.Consequent) < vocab.Format(b.Consequent)
	}
}

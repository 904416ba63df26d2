// Package rules derives association rules from frequent itemsets, removes
// redundant rules and orders the survivors for presentation.
package rules

import (
	"strings"

	"github.com/YuminosukeSato/arules/itemset"
)

// Rule is an association rule Antecedent → Consequent.
// Antecedent and Consequent are disjoint, non-empty and partition the
// frequent itemset the rule was derived from. Rules are never mutated after
// generation.
type Rule struct {
	Antecedent itemset.Itemset
	Consequent itemset.Itemset

	// Support is the support of Antecedent ∪ Consequent.
	Support float64
	// Confidence is support(A∪C)/support(A), in (0, 1].
	Confidence float64
	// Lift is Confidence/support(C).
	Lift float64
	// AntecedentSupport and ConsequentSupport are kept for reporting.
	AntecedentSupport float64
	ConsequentSupport float64
}

// AntecedentLen returns |Antecedent|.
func (r Rule) AntecedentLen() int {
	return r.Antecedent.Len()
}

// Dominates reports whether r makes other redundant: same consequent,
// r's antecedent is a proper subset of other's, and r is at least as confident.
func (r Rule) Dominates(other Rule) bool {
	return r.Consequent.Equal(other.Consequent) &&
		r.Antecedent.IsProperSubsetOf(other.Antecedent) &&
		r.Confidence >= other.Confidence
}

// Format renders the rule as "a=1, b=2 → c=3" using vocab labels.
func (r Rule) Format(vocab *itemset.Vocabulary) string {
	var b strings.Builder
	b.WriteString(vocab.Format(r.Antecedent))
	b.WriteString(" → ")
	b.WriteString(vocab.Format(r.Consequent))
	return b.String()
}

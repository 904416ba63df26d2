package rules

import (
	"github.com/YuminosukeSato/arules/itemset"
	"github.com/YuminosukeSato/arules/metrics"
	"github.com/YuminosukeSato/arules/pkg/errors"
)

// maxItemsetLen bounds the subset enumeration mask.
const maxItemsetLen = 63

// Frequent is the view of a frequent-itemset collection the generator needs.
// apriori.Result implements it.
type Frequent interface {
	Len() int
	At(i int) (itemset.Itemset, int)
	Count(s itemset.Itemset) (int, bool)
	Samples() int
}

// Generate enumerates, for every frequent itemset of size ≥ 2, each non-empty
// proper subset as antecedent and keeps the rules whose confidence reaches
// minConfidence. Rules appear in itemset order, then by antecedent bitmask.
//
// An empty slice with a nil error means no rule met the threshold. A subset
// missing from frequent is reported as an invariant violation: every subset
// of a frequent itemset must itself be frequent.
func Generate(frequent Frequent, minConfidence float64) ([]Rule, error) {
	if !errors.InOpenUnitInterval(minConfidence) {
		return nil, errors.NewConfigurationError("min_confidence", "must be in (0, 1]", minConfidence)
	}
	n := frequent.Samples()
	if n == 0 {
		return nil, errors.NewEmptyInputError("rules.Generate", 0, 0)
	}

	var out []Rule
	for i := 0; i < frequent.Len(); i++ {
		set, unionCount := frequent.At(i)
		k := set.Len()
		if k < 2 {
			continue
		}
		if k > maxItemsetLen {
			return nil, errors.NewInvariantViolation("rules.Generate: itemset of %d items exceeds %d", k, maxItemsetLen)
		}

		full := uint64(1)<<uint(k) - 1
		for mask := uint64(1); mask < full; mask++ {
			ant := set.Subset(mask)
			cons := set.Subset(full &^ mask)

			antCount, ok := frequent.Count(ant)
			if !ok {
				return nil, errors.NewInvariantViolation("rules.Generate: antecedent %s of frequent itemset %s not frequent", ant, set)
			}
			consCount, ok := frequent.Count(cons)
			if !ok {
				return nil, errors.NewInvariantViolation("rules.Generate: consequent %s of frequent itemset %s not frequent", cons, set)
			}

			confidence := metrics.Confidence(unionCount, antCount)
			if err := errors.CheckUnitInterval("rules.Generate", "confidence", confidence); err != nil {
				return nil, err
			}
			if confidence < minConfidence {
				continue
			}
			consSupport := metrics.Support(consCount, n)
			lift := metrics.Lift(confidence, consSupport)
			if err := errors.CheckScalar("rules.Generate", lift); err != nil {
				return nil, err
			}
			out = append(out, Rule{
				Antecedent:        ant,
				Consequent:        cons,
				Support:           metrics.Support(unionCount, n),
				Confidence:        confidence,
				Lift:              lift,
				AntecedentSupport: metrics.Support(antCount, n),
				ConsequentSupport: consSupport,
			})
		}
	}
	return out, nil
}

// FilterLift keeps the rules whose lift is at least minLift.
// minLift ≤ 0 keeps every rule.
func FilterLift(rules []Rule, minLift float64) []Rule {
	if minLift <= 0 {
		return rules
	}
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Lift >= minLift {
			out = append(out, r)
		}
	}
	return out
}

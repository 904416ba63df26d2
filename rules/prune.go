package rules

import (
	"context"
	"sort"

	"github.com/YuminosukeSato/arules/core/parallel"
	"golang.org/x/sync/errgroup"
)

// groupByConsequent partitions rule indices by consequent, in first-seen order.
// Domination is only defined between rules predicting the same consequent.
func groupByConsequent(rules []Rule) [][]int {
	pos := make(map[string]int)
	var groups [][]int
	for i, r := range rules {
		key := r.Consequent.Key()
		g, ok := pos[key]
		if !ok {
			g = len(groups)
			pos[key] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}

// pruneGroup marks keep[i] for the rules of one consequent group that no other
// rule of the group dominates.
//
// Rules are visited by ascending antecedent length and each is tested only
// against rules already kept. Domination is transitive, so a rule dominated by
// a removed rule is also dominated by a kept one, and the result equals the
// full pairwise test.
func pruneGroup(rules []Rule, group []int, keep []bool) {
	order := append([]int(nil), group...)
	sort.SliceStable(order, func(a, b int) bool {
		return rules[order[a]].Antecedent.Len() < rules[order[b]].Antecedent.Len()
	})

	kept := make([]int, 0, len(order))
	for _, b := range order {
		rb := rules[b]
		dominated := false
		for _, a := range kept {
			ra := rules[a]
			if ra.Confidence >= rb.Confidence &&
				ra.Antecedent.Len() < rb.Antecedent.Len() &&
				ra.Antecedent.IsSubsetOf(rb.Antecedent) {
				dominated = true
				break
			}
		}
		keep[b] = !dominated
		if !dominated {
			kept = append(kept, b)
		}
	}
}

func collect(rules []Rule, keep []bool) []Rule {
	out := make([]Rule, 0, len(rules))
	for i, r := range rules {
		if keep[i] {
			out = append(out, r)
		}
	}
	return out
}

// Prune removes every rule dominated by a simpler rule with the same
// consequent and equal or higher confidence. Survivors keep their input order.
// Pruning its own output returns the same rules.
func Prune(rules []Rule) []Rule {
	keep := make([]bool, len(rules))
	for _, g := range groupByConsequent(rules) {
		pruneGroup(rules, g, keep)
	}
	return collect(rules, keep)
}

// PruneParallel is Prune with consequent groups processed concurrently by up
// to workers goroutines (0 means runtime.NumCPU()). It returns ctx's error if
// ctx is cancelled before all groups are done.
func PruneParallel(ctx context.Context, rules []Rule, workers int) ([]Rule, error) {
	groups := groupByConsequent(rules)
	keep := make([]bool, len(rules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel.Workers(workers))
	for _, group := range groups {
		group := group
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// groups are disjoint, so each goroutine writes distinct keep slots
			pruneGroup(rules, group, keep)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return collect(rules, keep), nil
}

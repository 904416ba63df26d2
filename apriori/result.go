package apriori

import (
	"github.com/YuminosukeSato/arules/itemset"
	"github.com/YuminosukeSato/arules/metrics"
)

// FrequentItemset is an itemset whose support met the threshold.
type FrequentItemset struct {
	Itemset itemset.Itemset
	Count   int
	Support float64
}

// Result is the union of all frequent levels, in level order and,
// within a level, in lexicographic item order.
type Result struct {
	itemsets []FrequentItemset
	byKey    map[string]int
	levels   []int // levels[k-1] is the number of frequent k-itemsets
	n        int
}

func newResult(n int) *Result {
	return &Result{byKey: make(map[string]int), n: n}
}

func (r *Result) addLevel(level []FrequentItemset) {
	for _, f := range level {
		r.byKey[f.Itemset.Key()] = len(r.itemsets)
		r.itemsets = append(r.itemsets, f)
	}
	r.levels = append(r.levels, len(level))
}

// Len returns the number of frequent itemsets.
func (r *Result) Len() int {
	return len(r.itemsets)
}

// Empty reports whether no itemset was frequent.
func (r *Result) Empty() bool {
	return len(r.itemsets) == 0
}

// Samples returns the number of transactions mined.
func (r *Result) Samples() int {
	return r.n
}

// At returns the i-th frequent itemset and its count.
func (r *Result) At(i int) (itemset.Itemset, int) {
	f := r.itemsets[i]
	return f.Itemset, f.Count
}

// Itemsets returns a copy of all frequent itemsets.
func (r *Result) Itemsets() []FrequentItemset {
	return append([]FrequentItemset(nil), r.itemsets...)
}

// Level returns the frequent itemsets of size k.
func (r *Result) Level(k int) []FrequentItemset {
	if k < 1 || k > len(r.levels) {
		return nil
	}
	start := 0
	for i := 0; i < k-1; i++ {
		start += r.levels[i]
	}
	return append([]FrequentItemset(nil), r.itemsets[start:start+r.levels[k-1]]...)
}

// MaxLevel returns the size of the largest frequent itemsets.
func (r *Result) MaxLevel() int {
	for k := len(r.levels); k > 0; k-- {
		if r.levels[k-1] > 0 {
			return k
		}
	}
	return 0
}

// Count returns the transaction count of s if s is frequent.
func (r *Result) Count(s itemset.Itemset) (int, bool) {
	i, ok := r.byKey[s.Key()]
	if !ok {
		return 0, false
	}
	return r.itemsets[i].Count, true
}

// Support returns the support of s if s is frequent.
func (r *Result) Support(s itemset.Itemset) (float64, bool) {
	c, ok := r.Count(s)
	if !ok {
		return 0, false
	}
	return metrics.Support(c, r.n), true
}

// Contains reports whether s is frequent.
func (r *Result) Contains(s itemset.Itemset) bool {
	_, ok := r.byKey[s.Key()]
	return ok
}

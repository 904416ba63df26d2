package itemset

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Transactions is the encoded item matrix stored column-wise:
// for every item a bitset of the transactions that contain it.
// It is immutable once built.
type Transactions struct {
	n         int
	tids      []*bitset.BitSet
	attribute []int
}

// Builder accumulates transactions row by row.
type Builder struct {
	numItems  int
	n         int
	tids      []*bitset.BitSet
	attribute []int
}

// NewBuilder creates a builder for numItems items and about rows transactions.
// attributeOf maps an item id to its attribute index; it may be nil.
func NewBuilder(numItems, rows int, attributeOf func(ItemID) int) *Builder {
	b := &Builder{
		numItems:  numItems,
		tids:      make([]*bitset.BitSet, numItems),
		attribute: make([]int, numItems),
	}
	for i := range b.tids {
		b.tids[i] = bitset.New(uint(rows))
		if attributeOf != nil {
			b.attribute[i] = attributeOf(ItemID(i))
		} else {
			b.attribute[i] = i
		}
	}
	return b
}

// Add appends one transaction holding ids.
func (b *Builder) Add(ids ...ItemID) error {
	for _, id := range ids {
		if id < 0 || int(id) >= b.numItems {
			return fmt.Errorf("itemset: item id %d out of range [0, %d)", id, b.numItems)
		}
		b.tids[id].Set(uint(b.n))
	}
	b.n++
	return nil
}

// Build returns the finished Transactions. The builder must not be reused.
func (b *Builder) Build() *Transactions {
	t := &Transactions{n: b.n, tids: b.tids, attribute: b.attribute}
	b.tids = nil
	return t
}

// Len returns the number of transactions N.
func (t *Transactions) Len() int {
	return t.n
}

// NumItems returns the size of the item universe.
func (t *Transactions) NumItems() int {
	return len(t.tids)
}

// SameAttribute reports whether a and b encode values of the same attribute.
// Such items never co-occur in one transaction.
func (t *Transactions) SameAttribute(a, b ItemID) bool {
	return t.attribute[a] == t.attribute[b]
}

// TIDs returns a copy of the tid-list of id.
func (t *Transactions) TIDs(id ItemID) *bitset.BitSet {
	return t.tids[id].Clone()
}

// ItemCount returns the number of transactions containing id.
func (t *Transactions) ItemCount(id ItemID) int {
	return int(t.tids[id].Count())
}

// Cover returns the tid-list of the transactions containing every item of s.
// The empty set covers all transactions.
func (t *Transactions) Cover(s Itemset) *bitset.BitSet {
	if s.Len() == 0 {
		all := bitset.New(uint(t.n))
		for i := 0; i < t.n; i++ {
			all.Set(uint(i))
		}
		return all
	}
	cover := t.tids[s.At(0)].Clone()
	for i := 1; i < s.Len(); i++ {
		cover.InPlaceIntersection(t.tids[s.At(i)])
	}
	return cover
}

// Count returns the number of transactions containing every item of s.
func (t *Transactions) Count(s Itemset) int {
	switch s.Len() {
	case 0:
		return t.n
	case 1:
		return t.ItemCount(s.At(0))
	case 2:
		return int(t.tids[s.At(0)].IntersectionCardinality(t.tids[s.At(1)]))
	default:
		return int(t.Cover(s).Count())
	}
}

// Support returns Count(s)/N.
func (t *Transactions) Support(s Itemset) float64 {
	if t.n == 0 {
		return 0
	}
	return float64(t.Count(s)) / float64(t.n)
}

// Row returns the items present in transaction i.
func (t *Transactions) Row(i int) Itemset {
	var ids []ItemID
	for id, tids := range t.tids {
		if tids.Test(uint(i)) {
			ids = append(ids, ItemID(id))
		}
	}
	if len(ids) == 0 {
		return Itemset{}
	}
	return fromSorted(ids)
}

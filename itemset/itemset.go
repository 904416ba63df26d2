package itemset

import (
	"slices"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Itemset is an immutable set of distinct items.
// The zero value is the empty set.
type Itemset struct {
	items []ItemID
	bits  *bitset.BitSet
}

// New builds an itemset from ids, dropping duplicates.
func New(ids ...ItemID) Itemset {
	if len(ids) == 0 {
		return Itemset{}
	}
	items := slices.Clone(ids)
	slices.Sort(items)
	items = slices.Compact(items)
	return fromSorted(items)
}

// fromSorted takes ownership of a sorted, duplicate-free slice.
func fromSorted(items []ItemID) Itemset {
	bits := bitset.New(uint(items[len(items)-1]) + 1)
	for _, id := range items {
		bits.Set(uint(id))
	}
	return Itemset{items: items, bits: bits}
}

// Len returns the number of items.
func (s Itemset) Len() int {
	return len(s.items)
}

// Items returns a copy of the ids in ascending order.
func (s Itemset) Items() []ItemID {
	return slices.Clone(s.items)
}

// At returns the i-th smallest id.
func (s Itemset) At(i int) ItemID {
	return s.items[i]
}

// Last returns the largest id. It panics on the empty set.
func (s Itemset) Last() ItemID {
	return s.items[len(s.items)-1]
}

// Contains reports whether id is a member.
func (s Itemset) Contains(id ItemID) bool {
	return s.bits != nil && id >= 0 && s.bits.Test(uint(id))
}

// IsSubsetOf reports whether every item of s is in other.
func (s Itemset) IsSubsetOf(other Itemset) bool {
	if len(s.items) == 0 {
		return true
	}
	if len(s.items) > len(other.items) || other.bits == nil {
		return false
	}
	return other.bits.IsSuperSet(s.bits)
}

// IsProperSubsetOf reports whether s ⊊ other.
func (s Itemset) IsProperSubsetOf(other Itemset) bool {
	return len(s.items) < len(other.items) && s.IsSubsetOf(other)
}

// Equal reports whether s and other hold the same items.
func (s Itemset) Equal(other Itemset) bool {
	return slices.Equal(s.items, other.items)
}

// With returns s ∪ {id}.
func (s Itemset) With(id ItemID) Itemset {
	if s.Contains(id) {
		return s
	}
	items := make([]ItemID, 0, len(s.items)+1)
	items = append(items, s.items...)
	pos, _ := slices.BinarySearch(items, id)
	items = slices.Insert(items, pos, id)
	return fromSorted(items)
}

// Without returns s with the item at index i removed.
func (s Itemset) Without(i int) Itemset {
	if len(s.items) == 1 {
		return Itemset{}
	}
	items := make([]ItemID, 0, len(s.items)-1)
	items = append(items, s.items[:i]...)
	items = append(items, s.items[i+1:]...)
	return fromSorted(items)
}

// Difference returns s − other.
func (s Itemset) Difference(other Itemset) Itemset {
	items := make([]ItemID, 0, len(s.items))
	for _, id := range s.items {
		if !other.Contains(id) {
			items = append(items, id)
		}
	}
	if len(items) == 0 {
		return Itemset{}
	}
	return fromSorted(items)
}

// Subset returns the items of s selected by the bits of mask,
// bit i selecting s.At(i). Only the low Len() bits are read.
func (s Itemset) Subset(mask uint64) Itemset {
	items := make([]ItemID, 0, len(s.items))
	for i, id := range s.items {
		if mask&(1<<uint(i)) != 0 {
			items = append(items, id)
		}
	}
	if len(items) == 0 {
		return Itemset{}
	}
	return fromSorted(items)
}

// SharesPrefix reports whether s and other agree on their first n items.
func (s Itemset) SharesPrefix(other Itemset, n int) bool {
	if len(s.items) < n || len(other.items) < n {
		return false
	}
	return slices.Equal(s.items[:n], other.items[:n])
}

// Key returns a canonical string usable as a map key.
func (s Itemset) Key() string {
	var b strings.Builder
	b.Grow(len(s.items) * 4)
	for i, id := range s.items {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}

// Compare orders itemsets lexicographically by their sorted ids.
func Compare(a, b Itemset) int {
	return slices.Compare(a.items, b.items)
}

// String implements fmt.Stringer.
func (s Itemset) String() string {
	return "{" + s.Key() + "}"
}

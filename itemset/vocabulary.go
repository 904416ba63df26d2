package itemset

import (
	"fmt"
	"strings"
	"sync"
)

// ItemID is the dense integer identifier of an Item within one mining run.
type ItemID int

// Item is an (attribute, value) pair.
type Item struct {
	Attribute string
	Value     string
}

// Label renders the item as "attribute=value".
func (i Item) Label() string {
	return i.Attribute + LabelSeparator + i.Value
}

// LabelSeparator joins the attribute and value of an item label.
const LabelSeparator = "="

// Vocabulary assigns ItemIDs to items in first-seen order and maps them back.
// Ids are stable for the lifetime of the Vocabulary.
type Vocabulary struct {
	mu     sync.RWMutex
	index  map[Item]ItemID
	items  []Item
	frozen bool
}

// NewVocabulary creates an empty vocabulary with room for capacity items.
func NewVocabulary(capacity int) *Vocabulary {
	return &Vocabulary{
		index: make(map[Item]ItemID, capacity),
		items: make([]Item, 0, capacity),
	}
}

// Add returns the id of item, assigning the next id if it is new.
// The second result reports whether the item was added.
func (v *Vocabulary) Add(item Item) (ItemID, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if id, ok := v.index[item]; ok {
		return id, false
	}
	if v.frozen {
		panic(fmt.Sprintf("itemset: cannot add %q to frozen vocabulary", item.Label()))
	}
	id := ItemID(len(v.items))
	v.index[item] = id
	v.items = append(v.items, item)
	return id, true
}

// Freeze forbids further additions.
func (v *Vocabulary) Freeze() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.frozen = true
}

// Lookup returns the id of item if it is known.
func (v *Vocabulary) Lookup(item Item) (ItemID, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	id, ok := v.index[item]
	return id, ok
}

// Item returns the item with the given id. It panics on an unknown id.
func (v *Vocabulary) Item(id ItemID) Item {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if id < 0 || int(id) >= len(v.items) {
		panic(fmt.Sprintf("itemset: unknown item id %d of %d", id, len(v.items)))
	}
	return v.items[id]
}

// Len returns the number of items.
func (v *Vocabulary) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.items)
}

// Labels renders the items of s as "attribute=value" strings in id order.
func (v *Vocabulary) Labels(s Itemset) []string {
	out := make([]string, 0, s.Len())
	for _, id := range s.items {
		out = append(out, v.Item(id).Label())
	}
	return out
}

// Format joins the labels of s with ", ".
func (v *Vocabulary) Format(s Itemset) string {
	return strings.Join(v.Labels(s), ", ")
}

// Attribute returns the attribute name of id.
func (v *Vocabulary) Attribute(id ItemID) string {
	return v.Item(id).Attribute
}

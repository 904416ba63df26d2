// Package itemset provides the integer-coded item universe used by the miner.
//
// Every attribute=value pair seen during encoding is assigned a dense ItemID
// by a Vocabulary. Itemsets are sorted id slices paired with a bitset so that
// subset tests are bitwise operations, and Transactions store one tid-list
// bitset per item (vertical layout) so that support counting is an
// intersection cardinality.
package itemset

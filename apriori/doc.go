// Package apriori mines frequent itemsets level by level.
//
// Level 1 keeps every item whose support reaches MinSupport. Level k joins
// pairs of frequent (k-1)-itemsets sharing their first k-2 items, drops any
// candidate with an infrequent (k-1)-subset, and counts the survivors by
// intersecting tid-lists. Mining stops at MaxLen or at the first empty level.
//
// Support is the exact ratio count/N; candidates are compared against the
// threshold with that ratio, without smoothing.
package apriori

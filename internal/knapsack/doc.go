// Package knapsack solves the 0/1 knapsack selection problem over a small
// catalog of items under a single cost bound.
//
// Two strategies are provided:
//
//   - Greedy packs items in descending order of a RankFunc (value, cost
//     reciprocal or density). O(n log n), not guaranteed optimal.
//
//   - Exact explores the full include/exclude decision tree. The only pruning
//     is infeasibility (an item costing more than the remaining budget), and
//     nothing is memoized, so it evaluates up to 2^n leaves. Use it on small
//     catalogs only; it refuses more than MaxExactItems items.
//
// Both functions are pure: they never mutate their input and are safe to call
// concurrently over the same catalog.
package knapsack

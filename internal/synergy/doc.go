// Package synergy computes pairwise affinity between loaded modules and
// suggests a best partner for each one.
//
// The optimizer is deliberately a plain O(n²) scan with greedy independent
// per-module selection: a module's chosen partner need not choose it back,
// and the resulting map is not a matching. Scoring is a pure function of the
// two module names and can be swapped out; the default formula is a fixed
// placeholder kept for reproducible behavior.
package synergy

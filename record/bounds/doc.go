// Package bounds computes and maintains the minimum and maximum of a
// float64 series over a possibly wrapping index interval.
//
// A Tracker supports both a full rescan (Compute) and an O(1) incremental
// widening (Update) for single-sample writes.
package bounds

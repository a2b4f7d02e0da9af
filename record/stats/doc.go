// Package stats computes summary statistics and magnitude spectra of
// recorded sample windows.
//
// Functions take plain []float64 windows, typically extracted from a
// recorder entry with Window, and never retain them.
package stats

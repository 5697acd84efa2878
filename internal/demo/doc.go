// Package demo evaluates a fixed set of worked split number scenarios
// and reports whether every result matches its documented value.
//
// Magnitudes are compared exactly, alignments within a tolerance.
// A failed check is reported, it is not an error: Run always returns
// a complete Report, and callers decide what to do with failures.
package demo

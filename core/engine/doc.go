// Package engine implements the transaction reconciliation core: set-based
// matching, amount discrepancy detection and summary statistics over two
// collections of transaction records.
//
// The engine is deliberately pure. It performs no I/O, holds no state and
// never mutates its inputs; every function is a deterministic transformation
// of the two collections it is handed. Loading records for a session and
// serializing results belong to the surrounding features, not here.
//
// # Components
//
// 1. Reconcile: classifies identifiers into matched / only-in-A / only-in-B
// via set intersection and difference, and computes the match rate over the
// identifier union.
//
// 2. FindDiscrepancies: for identifiers present in both systems, reports
// every pair of amounts that differ (exact equality, no tolerance), ranked
// by the absolute difference.
//
// 3. Summarize: aggregate record counts, matched/unmatched counts, match
// rate and per-system amount totals.
//
// None of the three depends on another's output; they may run sequentially
// or concurrently over the same snapshot.
//
// # Determinism
//
// All identifier lists are sorted ascending and discrepancies are ordered by
// difference descending with identifier ties ascending, so repeated runs over
// identical inputs produce byte-identical output.
//
// # Usage Example
//
//	match := engine.Reconcile(idsA, idsB)
//	report := engine.FindDiscrepancies(recordsA, recordsB)
//	summary := engine.Summarize(recordsA, recordsB)
package engine

package engine

// Record is a single transaction as reported by one system.
// The engine never mutates records; callers own the slices they pass in.
type Record struct {
	// ID is the transaction identifier assigned by the source system.
	// It is opaque to the engine and not required to be unique within a system.
	ID string

	// Amount is the reported transaction amount.
	Amount float64
}

// MatchSet is the result of a set-based reconciliation of two identifier
// collections. The three identifier lists are pairwise disjoint and their
// union equals the union of the (deduplicated) inputs.
type MatchSet struct {
	// TotalA is the number of unique identifiers reported by system A.
	TotalA int `json:"total_a"`

	// TotalB is the number of unique identifiers reported by system B.
	TotalB int `json:"total_b"`

	// Matched contains identifiers present in both systems, sorted ascending.
	Matched []string `json:"matched"`

	// OnlyA contains identifiers present only in system A, sorted ascending.
	OnlyA []string `json:"only_a"`

	// OnlyB contains identifiers present only in system B, sorted ascending.
	OnlyB []string `json:"only_b"`

	// MatchRate is the percentage of the identifier union that matched,
	// rounded to 2 decimal places. 0.0 when both inputs are empty.
	MatchRate float64 `json:"match_rate"`
}

// Discrepancy describes a matched identifier whose amounts disagree.
type Discrepancy struct {
	// ID is the transaction identifier present in both systems.
	ID string `json:"id"`

	// AmountA is the amount reported by system A.
	AmountA float64 `json:"amount_a"`

	// AmountB is the amount reported by system B.
	AmountB float64 `json:"amount_b"`

	// Difference is |AmountA - AmountB|.
	Difference float64 `json:"difference"`
}

// DiscrepancyReport lists all amount discrepancies between two record
// collections, largest difference first.
type DiscrepancyReport struct {
	// Discrepancies is sorted by Difference descending, ties broken by ID
	// ascending for deterministic output.
	Discrepancies []Discrepancy `json:"discrepancies"`

	// TotalDifference is the sum of all individual differences, rounded to
	// 2 decimal places.
	TotalDifference float64 `json:"total_difference"`
}

// Count returns the number of matched identifiers with differing amounts.
// This is a different metric than Summary.UnmatchedCount, which counts
// identifiers missing from one of the systems.
func (r DiscrepancyReport) Count() int {
	return len(r.Discrepancies)
}

// Summary aggregates counts, match rate and amount totals for a session.
//
// SystemACount and SystemBCount are raw record counts, NOT deduplicated,
// while MatchedCount and UnmatchedCount are derived from deduplicated
// identifier sets. If an identifier appears twice within one system the two
// families of counts deliberately diverge; see Reconcile for the set side.
type Summary struct {
	// SystemACount is the raw number of records reported by system A.
	SystemACount int `json:"system_a_count"`

	// SystemBCount is the raw number of records reported by system B.
	SystemBCount int `json:"system_b_count"`

	// MatchedCount is the number of unique identifiers present in both systems.
	MatchedCount int `json:"matched_count"`

	// UnmatchedCount is the number of unique identifiers present in exactly
	// one system. This is the summary-sense "discrepancy count" and is
	// unrelated to amount discrepancies.
	UnmatchedCount int `json:"unmatched_count"`

	// MatchRate is computed identically to MatchSet.MatchRate.
	MatchRate float64 `json:"match_rate"`

	// SystemATotal is the sum of amounts over all system A records, rounded
	// to 2 decimal places.
	SystemATotal float64 `json:"system_a_total"`

	// SystemBTotal is the sum of amounts over all system B records, rounded
	// to 2 decimal places.
	SystemBTotal float64 `json:"system_b_total"`

	// AmountDifference is |SystemATotal - SystemBTotal| before rounding,
	// rounded to 2 decimal places.
	AmountDifference float64 `json:"amount_difference"`
}

package engine

import (
	"math"
	"sort"
)

// Reconcile classifies the identifiers of two systems into matched,
// only-in-A and only-in-B using set operations. Duplicate identifiers within
// one input are deduplicated before comparison, so TotalA/TotalB are unique
// counts. Empty inputs are valid and yield empty lists and a 0.0 match rate.
func Reconcile(idsA, idsB []string) MatchSet {
	setA := toSet(idsA)
	setB := toSet(idsB)

	matched := make([]string, 0)
	onlyA := make([]string, 0)
	onlyB := make([]string, 0)

	for id := range setA {
		if _, ok := setB[id]; ok {
			matched = append(matched, id)
		} else {
			onlyA = append(onlyA, id)
		}
	}
	for id := range setB {
		if _, ok := setA[id]; !ok {
			onlyB = append(onlyB, id)
		}
	}

	// Sort for deterministic output
	sort.Strings(matched)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	return MatchSet{
		TotalA:    len(setA),
		TotalB:    len(setB),
		Matched:   matched,
		OnlyA:     onlyA,
		OnlyB:     onlyB,
		MatchRate: matchRate(len(matched), len(matched)+len(onlyA)+len(onlyB)),
	}
}

// FindDiscrepancies compares amounts for identifiers present in both record
// collections and reports every exact-inequality mismatch. Amount comparison
// is exact floating-point equality; no epsilon tolerance. When an identifier
// appears more than once within one system, the later record silently
// overwrites the earlier one.
func FindDiscrepancies(recordsA, recordsB []Record) DiscrepancyReport {
	amountsA := toAmounts(recordsA)
	amountsB := toAmounts(recordsB)

	discrepancies := make([]Discrepancy, 0)
	total := 0.0

	for id, amountA := range amountsA {
		amountB, ok := amountsB[id]
		if !ok || amountA == amountB {
			continue
		}
		diff := math.Abs(amountA - amountB)
		discrepancies = append(discrepancies, Discrepancy{
			ID:         id,
			AmountA:    amountA,
			AmountB:    amountB,
			Difference: diff,
		})
		total += diff
	}

	// Largest difference first; ties by ID for deterministic output
	sort.Slice(discrepancies, func(i, j int) bool {
		if discrepancies[i].Difference != discrepancies[j].Difference {
			return discrepancies[i].Difference > discrepancies[j].Difference
		}
		return discrepancies[i].ID < discrepancies[j].ID
	})

	return DiscrepancyReport{
		Discrepancies:   discrepancies,
		TotalDifference: round2(total),
	}
}

// Summarize computes aggregate statistics over two record collections.
// Record counts are raw (duplicates included) while matched/unmatched counts
// come from deduplicated identifier sets; the two may diverge when one system
// reports the same identifier twice.
func Summarize(recordsA, recordsB []Record) Summary {
	setA := make(map[string]struct{}, len(recordsA))
	setB := make(map[string]struct{}, len(recordsB))

	totalA := 0.0
	for _, r := range recordsA {
		setA[r.ID] = struct{}{}
		totalA += r.Amount
	}
	totalB := 0.0
	for _, r := range recordsB {
		setB[r.ID] = struct{}{}
		totalB += r.Amount
	}

	matched := 0
	unmatched := 0
	for id := range setA {
		if _, ok := setB[id]; ok {
			matched++
		} else {
			unmatched++
		}
	}
	for id := range setB {
		if _, ok := setA[id]; !ok {
			unmatched++
		}
	}

	return Summary{
		SystemACount:     len(recordsA),
		SystemBCount:     len(recordsB),
		MatchedCount:     matched,
		UnmatchedCount:   unmatched,
		MatchRate:        matchRate(matched, matched+unmatched),
		SystemATotal:     round2(totalA),
		SystemBTotal:     round2(totalB),
		AmountDifference: round2(math.Abs(totalA - totalB)),
	}
}

// matchRate returns the matched percentage of the identifier union, rounded
// to 2 decimal places. Guards the empty union explicitly: 0.0, not an error.
func matchRate(matched, union int) float64 {
	if union == 0 {
		return 0.0
	}
	return round2(float64(matched) / float64(union) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func toAmounts(records []Record) map[string]float64 {
	amounts := make(map[string]float64, len(records))
	for _, r := range records {
		amounts[r.ID] = r.Amount
	}
	return amounts
}

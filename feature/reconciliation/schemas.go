package reconciliation

import "time"

// AnalysisResult is the wire form of a set-based reconciliation run.
type AnalysisResult struct {
	SessionID           uint     `json:"session_id"`
	SessionName         string   `json:"session_name"`
	SystemAName         string   `json:"system_a_name"`
	SystemBName         string   `json:"system_b_name"`
	TotalSystemA        int      `json:"total_system_a"`
	TotalSystemB        int      `json:"total_system_b"`
	MatchedCount        int      `json:"matched_count"`
	MatchedTransactions []string `json:"matched_transactions"`
	OnlyInSystemACount  int      `json:"only_in_system_a_count"`
	OnlyInSystemA       []string `json:"only_in_system_a"`
	OnlyInSystemBCount  int      `json:"only_in_system_b_count"`
	OnlyInSystemB       []string `json:"only_in_system_b"`
	MatchRate           float64  `json:"match_rate"`
}

// DiscrepancyDetail is one matched transaction whose amounts disagree.
type DiscrepancyDetail struct {
	TransactionID string  `json:"transaction_id"`
	SystemAAmount float64 `json:"system_a_amount"`
	SystemBAmount float64 `json:"system_b_amount"`
	Difference    float64 `json:"difference"`
}

// DiscrepancyResult is the wire form of an amount discrepancy analysis.
// TransactionsWithDiscrepancies counts matched ids with differing amounts and
// is unrelated to the summary's discrepancy_count.
type DiscrepancyResult struct {
	SessionID                     uint                `json:"session_id"`
	SessionName                   string              `json:"session_name"`
	TransactionsWithDiscrepancies int                 `json:"transactions_with_discrepancies"`
	Discrepancies                 []DiscrepancyDetail `json:"discrepancies"`
	TotalDiscrepancyAmount        float64             `json:"total_discrepancy_amount"`
}

// SummaryResult is the wire form of the session summary statistics.
// SystemACount and SystemBCount are raw record counts; discrepancy_count is
// the number of unique ids present in exactly one system.
type SummaryResult struct {
	SessionID          uint    `json:"session_id"`
	SessionName        string  `json:"session_name"`
	SystemAName        string  `json:"system_a_name"`
	SystemBName        string  `json:"system_b_name"`
	SystemACount       int     `json:"system_a_count"`
	SystemBCount       int     `json:"system_b_count"`
	MatchedCount       int     `json:"matched_count"`
	DiscrepancyCount   int     `json:"discrepancy_count"`
	MatchRate          float64 `json:"match_rate"`
	SystemATotalAmount float64 `json:"system_a_total_amount"`
	SystemBTotalAmount float64 `json:"system_b_total_amount"`
	AmountDifference   float64 `json:"amount_difference"`
}

// ArchiveEnvelope is the JSON document written to the object store on export.
type ArchiveEnvelope struct {
	ExportedAt    time.Time          `json:"exported_at"`
	SessionID     uint               `json:"session_id"`
	SessionName   string             `json:"session_name"`
	Analysis      *AnalysisResult    `json:"analysis"`
	Discrepancies *DiscrepancyResult `json:"discrepancies"`
	Summary       *SummaryResult     `json:"summary"`
}

// ExportResult reports where an archive was written.
type ExportResult struct {
	Bucket string `json:"bucket"`
	Object string `json:"object"`
	Size   int64  `json:"size"`
}

package assistant

// Example pairs a prompt the classifier understands with what it does.
type Example struct {
	Prompt      string `json:"prompt"`
	Description string `json:"description"`
}

// Examples lists the prompts the assistant understands.
func Examples() []Example {
	return []Example{
		{Prompt: "health", Description: "Check if the API is running"},
		{Prompt: "list sessions", Description: "List all reconciliation sessions"},
		{Prompt: "get session 1", Description: "Get details of a specific session"},
		{Prompt: "reconcile session 1", Description: "Run reconciliation analysis using set operations"},
		{Prompt: "show discrepancies for session 1", Description: "Find amount mismatches between systems"},
		{Prompt: "summary for session 1", Description: "Get reconciliation summary with match rate"},
		{Prompt: "show transactions for session 1", Description: "List all transactions in a session"},
	}
}

package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// Action identifies what the assistant should do for a message.
type Action string

const (
	ActionHealth           Action = "health"
	ActionListSessions     Action = "list_sessions"
	ActionGetSession       Action = "get_session"
	ActionReconcile        Action = "reconcile"
	ActionGetDiscrepancies Action = "get_discrepancies"
	ActionGetSummary       Action = "get_summary"
	ActionListTransactions Action = "list_transactions"
	ActionHelp             Action = "help"
)

// Params carries the classified arguments for an action. Reason is only set
// on the help fallback.
type Params struct {
	SessionID uint
	Reason    string
}

var intPattern = regexp.MustCompile(`\b\d+\b`)

// extractSessionID pulls the first integer out of a message.
func extractSessionID(msg string) (uint, bool) {
	match := intPattern.FindString(msg)
	if match == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(match, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// withSessionID resolves an action that needs a session id, falling back to
// help when the message carries none.
func withSessionID(msg string, action Action) (Action, Params) {
	if id, ok := extractSessionID(msg); ok {
		return action, Params{SessionID: id}
	}
	return ActionHelp, Params{Reason: "missing_session_id"}
}

// Classify infers an action from a chat message using keyword rules. The
// checks are ordered so that the more specific phrasings win; "mismatch"
// resolves to discrepancies before the generic "match" resolves to reconcile.
func Classify(message string) (Action, Params) {
	msg := strings.ToLower(strings.TrimSpace(message))

	switch {
	case strings.Contains(msg, "health") || strings.Contains(msg, "status"):
		return ActionHealth, Params{}

	case strings.Contains(msg, "list sessions") ||
		(strings.Contains(msg, "sessions") &&
			(strings.Contains(msg, "list") || strings.Contains(msg, "show") || strings.Contains(msg, "all"))):
		return ActionListSessions, Params{}

	case strings.Contains(msg, "get session") || strings.Contains(msg, "session details"):
		return withSessionID(msg, ActionGetSession)

	case strings.Contains(msg, "summary"):
		return withSessionID(msg, ActionGetSummary)

	case strings.Contains(msg, "discrepanc") || strings.Contains(msg, "mismatch"):
		return withSessionID(msg, ActionGetDiscrepancies)

	case strings.Contains(msg, "reconcil") || strings.Contains(msg, "analyse") ||
		strings.Contains(msg, "analyze") || strings.Contains(msg, "compare") ||
		strings.Contains(msg, "match"):
		return withSessionID(msg, ActionReconcile)

	case strings.Contains(msg, "transaction"):
		return withSessionID(msg, ActionListTransactions)
	}

	return ActionHelp, Params{Reason: "unknown_intent"}
}

package assistant

import (
	"context"
	"fmt"

	"recon-service/core/audit"
	"recon-service/feature/health"
	"recon-service/feature/reconciliation"
	"recon-service/feature/session"
	"recon-service/feature/transaction"

	"go.uber.org/zap"
)

// ChatResponse is the assistant's answer to one message.
type ChatResponse struct {
	Action      Action         `json:"action"`
	Result      map[string]any `json:"result"`
	Explanation string         `json:"explanation"`
}

// Service routes classified chat messages to the underlying services.
// Every processed message is recorded through the audit sink.
type Service struct {
	sessions     *session.Service
	transactions *transaction.Service
	recon        *reconciliation.Service
	audit        audit.Sink
	logger       *zap.Logger
}

// NewService creates a new assistant service.
func NewService(sessions *session.Service, transactions *transaction.Service, recon *reconciliation.Service, sink audit.Sink, logger *zap.Logger) *Service {
	return &Service{
		sessions:     sessions,
		transactions: transactions,
		recon:        recon,
		audit:        sink,
		logger:       logger,
	}
}

// applyOverride lets metadata force a specific action with explicit params.
// The override is deterministic and skips classification entirely.
func applyOverride(action Action, params Params, metadata map[string]any) (Action, Params) {
	if metadata == nil {
		return action, params
	}
	raw, ok := metadata["action"].(string)
	if !ok {
		return action, params
	}

	action = Action(raw)
	params = Params{}
	if override, ok := metadata["params"].(map[string]any); ok {
		if id, ok := override["session_id"].(float64); ok && id >= 0 {
			params.SessionID = uint(id)
		}
	}
	return action, params
}

// Run classifies the message, executes the action and audits the outcome.
func (s *Service) Run(ctx context.Context, message string, metadata map[string]any) (*ChatResponse, error) {
	action, params := Classify(message)
	action, params = applyOverride(action, params, metadata)

	resp, err := s.dispatch(ctx, action, params)
	s.audit.Log(string(action), map[string]any{"message_len": len(message)}, err == nil, err)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *Service) dispatch(ctx context.Context, action Action, params Params) (*ChatResponse, error) {
	switch action {
	case ActionHealth:
		status := health.Status()
		return &ChatResponse{
			Action:      ActionHealth,
			Result:      map[string]any{"status": status.Status, "version": status.Version},
			Explanation: "Health check completed successfully.",
		}, nil

	case ActionListSessions:
		sessions, err := s.sessions.List(ctx)
		if err != nil {
			return nil, err
		}
		return &ChatResponse{
			Action:      ActionListSessions,
			Result:      map[string]any{"count": len(sessions), "sessions": sessions},
			Explanation: fmt.Sprintf("Found %d reconciliation session(s).", len(sessions)),
		}, nil

	case ActionGetSession:
		found, err := s.sessions.GetByID(ctx, params.SessionID)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, fmt.Errorf("%w: id %d", reconciliation.ErrSessionNotFound, params.SessionID)
		}
		return &ChatResponse{
			Action:      ActionGetSession,
			Result:      map[string]any{"session": found},
			Explanation: fmt.Sprintf("Fetched details for session #%d.", params.SessionID),
		}, nil

	case ActionReconcile:
		analysis, err := s.recon.Analyse(ctx, params.SessionID)
		if err != nil {
			return nil, err
		}
		return &ChatResponse{
			Action: ActionReconcile,
			Result: map[string]any{"analysis": analysis},
			Explanation: fmt.Sprintf(
				"Reconciliation complete: %d matched transactions, %d only in System A, %d only in System B. Match rate: %v%%.",
				analysis.MatchedCount, analysis.OnlyInSystemACount, analysis.OnlyInSystemBCount, analysis.MatchRate),
		}, nil

	case ActionGetDiscrepancies:
		result, err := s.recon.Discrepancies(ctx, params.SessionID)
		if err != nil {
			return nil, err
		}
		return &ChatResponse{
			Action: ActionGetDiscrepancies,
			Result: map[string]any{"discrepancies": result},
			Explanation: fmt.Sprintf(
				"Found %d amount discrepancies with a total difference of $%v.",
				result.TransactionsWithDiscrepancies, result.TotalDiscrepancyAmount),
		}, nil

	case ActionGetSummary:
		summary, err := s.recon.Summary(ctx, params.SessionID)
		if err != nil {
			return nil, err
		}
		return &ChatResponse{
			Action: ActionGetSummary,
			Result: map[string]any{"summary": summary},
			Explanation: fmt.Sprintf(
				"Session summary: match rate is %v%%, System A total: $%v, System B total: $%v.",
				summary.MatchRate, summary.SystemATotalAmount, summary.SystemBTotalAmount),
		}, nil

	case ActionListTransactions:
		found, err := s.sessions.GetByID(ctx, params.SessionID)
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, fmt.Errorf("%w: id %d", reconciliation.ErrSessionNotFound, params.SessionID)
		}
		records, err := s.transactions.ListBySession(ctx, params.SessionID)
		if err != nil {
			return nil, err
		}
		return &ChatResponse{
			Action:      ActionListTransactions,
			Result:      map[string]any{"count": len(records), "transactions": records},
			Explanation: fmt.Sprintf("Found %d transaction(s) for session #%d.", len(records), params.SessionID),
		}, nil
	}

	// Help fallback, also reached on unknown metadata overrides
	return &ChatResponse{
		Action: ActionHelp,
		Result: map[string]any{
			"examples": examplePrompts(),
			"hint":     "Include a session ID for reconciliation commands, e.g. 'reconcile session 1'.",
			"reason":   params.Reason,
		},
		Explanation: "I couldn't confidently infer the action from your message. Try one of the examples.",
	}, nil
}

func examplePrompts() []string {
	prompts := make([]string, 0, len(Examples()))
	for _, example := range Examples() {
		prompts = append(prompts, example.Prompt)
	}
	return prompts
}

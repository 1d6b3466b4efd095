// Package assistant implements a rule-based chat interface over the
// reconciliation API.
//
// Messages are classified with deterministic keyword rules, never free-form
// matching; the classifier extracts a session id where the action needs one
// and falls back to help with examples otherwise. Request metadata may carry
// a deterministic action override. Every processed message is written to the
// audit sink as a JSONL entry.
//
// # Components
//
//   - Classify: Keyword rules mapping a message to an Action.
//   - Service: Dispatches actions to the session, transaction and
//     reconciliation services.
//   - Handler: Exposes the /assistant HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /assistant/chat     : Classify and run a chat message.
//   - GET  /assistant/examples : List supported prompts.
package assistant

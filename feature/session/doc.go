// Package session implements reconciliation session management.
//
// A session is the named context for one reconciliation: it pins the two
// system names being compared and owns the transaction records uploaded for
// either side.
//
// # Components
//
//   - Service: GORM-backed CRUD for the reconciliation_sessions table.
//   - Handler: Exposes the /sessions HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST   /sessions      : Create a session (unique name).
//   - GET    /sessions      : List all sessions.
//   - GET    /sessions/:id  : Get one session.
//   - DELETE /sessions/:id  : Delete a session and its transactions.
package session

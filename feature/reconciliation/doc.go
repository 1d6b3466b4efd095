// Package reconciliation exposes the reconciliation engine over HTTP.
//
// It loads the two per-system record collections for a session and hands them
// to the pure core/engine functions. All persistence and wire concerns stay in
// this package; the engine itself never sees the database.
//
// # Components
//
//   - Service: Loads records, invokes the engine, archives report exports.
//   - Handler: Exposes the /reconciliation HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET  /reconciliation/analyse/:session_id        : Set-based identifier reconciliation.
//   - GET  /reconciliation/discrepancies/:session_id  : Amount discrepancies on matched ids.
//   - GET  /reconciliation/summary/:session_id        : Aggregate statistics.
//   - POST /reconciliation/export/:session_id         : Archive all reports to object storage.
//
// Unknown sessions yield 404 before the engine runs. Export yields 503 when
// no object store is configured.
package reconciliation

// Package transaction implements transaction ingestion for reconciliation
// sessions.
//
// Transactions arrive tagged with the system that reported them (system_a or
// system_b). Both single-record and bulk uploads are supported; bulk uploads
// are capped at MaxBulkTransactions per request and inserted in one batch.
//
// # Components
//
//   - Service: GORM-backed storage for the transactions table.
//   - Handler: Exposes the /transactions HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST   /transactions                              : Create a single transaction.
//   - POST   /transactions/bulk                         : Bulk upload transactions.
//   - GET    /transactions/session/:id                  : List a session's transactions.
//   - GET    /transactions/session/:id/system/:system   : List one system's transactions.
//   - DELETE /transactions/session/:id                  : Clear a session's transactions.
package transaction

// Package storage provides the object storage client used by the report
// archive.
//
// Reconciliation reports can be exported as JSON objects to an S3-compatible
// bucket (MinIO, AWS S3). The Client interface wraps the subset of minio-go
// operations the archive needs, which keeps handlers and services testable
// through the mocks subpackage.
//
// Archiving is optional: when no endpoint is configured the feature endpoints
// report the archive as unavailable instead of failing at startup.
package storage

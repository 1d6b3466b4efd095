// Package audit provides a structured audit trail for assistant and tool
// actions.
//
// Entries are written as JSONL (one JSON object per line) so the trail can be
// tailed and post-processed with standard tooling. The sink is passed into
// the features that need it via dependency injection; nothing in this package
// maintains process-wide state.
package audit

// Package tasks runs long catalog operations with real-time progress reporting.
//
// # Core Operations
//
// [CatalogEngine] provides two operations:
//
//  1. [CatalogEngine.Import] : Seed the SQLite catalog
//     - Optionally clears existing courses first
//     - Inserts each course with its skills and lessons, in catalog order
//     - Skips courses that already exist unless replacing
//
//  2. [CatalogEngine.BulkExport] : Export many courses concurrently
//     - Worker pool with a rate limiter in front of the job queue
//     - Writes one export per course (json, csv, markdown, txt)
//     - Writes export_manifest.json summarizing successes and failures
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
package tasks

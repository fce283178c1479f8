// Package repositories implements SQLite persistence for the course catalog.
//
// Key Implementations:
//   - [CourseRepository] : courses with their ordered skills and lesson videos
//
// Sequence numbers preserve catalog order independent of course ids and insertion timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories

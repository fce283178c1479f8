// Package catalog owns the immutable, ordered course catalog and the landing-page filter state built on it.
//
// # Catalog
//
// A [Catalog] is constructed once from a slice of [models.Course] (see [New], [Default], [LoadFile], [Decode])
// and never changes afterwards. Lookups by id return [shared.ErrCourseNotFound] for unknown ids.
//
// Categories are derived in catalog order, de-duplicated, and prefixed with the [AllCategory] sentinel.
//
// # Landing
//
// [Landing] tracks the active category and the featured course. The featured course always belongs to the
// visible set: when a filter change invalidates it, it resets to the first visible course, and when nothing
// is visible it is cleared.
//
// # Formats
//
// Catalog documents hold a top-level "courses" list and may be TOML, YAML or JSON.
// The default catalog is embedded from catalog.toml.
package catalog

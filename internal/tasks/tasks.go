// package tasks implements catalog import and export operations.
//
// The core abstraction is CatalogEngine, which seeds the SQLite catalog and exports courses to files.
// Operations emit progress updates via channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/shared"
)

// CourseStore is the persistence the importer writes to. Implemented by repositories.CourseRepository.
type CourseStore interface {
	Create(course *models.Course) error
	Get(id string) (*models.Course, error)
	DeleteAll() (int, error)
}

// ImportOpts configures [CatalogEngine.Import].
type ImportOpts struct {
	Replace bool // Delete every stored course before importing
}

// ImportFailure records a course that could not be stored.
type ImportFailure struct {
	CourseID string
	Error    error
}

// ImportResult summarizes an import.
type ImportResult struct {
	Total    int             // Courses in the source catalog
	Removed  int             // Courses deleted before importing (Replace only)
	Imported int             // Courses written
	Skipped  int             // Courses already present
	Failed   []ImportFailure // Courses that failed to write
}

// CatalogEngine runs catalog operations.
type CatalogEngine struct {
	store CourseStore
}

// NewCatalogEngine creates a new CatalogEngine. store may be nil when only exporting.
func NewCatalogEngine(store CourseStore) *CatalogEngine {
	return &CatalogEngine{store: store}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *CatalogEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Import writes courses to the store in order.
//
// Individual write failures are collected in the result; only a cancelled context or a failed clear abort the run.
func (e *CatalogEngine) Import(ctx context.Context, courses []models.Course, opts ImportOpts, progress chan<- ProgressUpdate) (*ImportResult, error) {
	if e.store == nil {
		return nil, fmt.Errorf("%w: course store not initialized", shared.ErrServiceUnavailable)
	}

	result := &ImportResult{Total: len(courses)}

	if opts.Replace {
		removed, err := e.store.DeleteAll()
		if err != nil {
			return nil, fmt.Errorf("failed to clear catalog: %w", err)
		}
		result.Removed = removed
		e.sendProgress(progress, clearCatalogUpdate(removed))
	}

	for i := range courses {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		course := courses[i].Clone()
		step := i + 1

		if !opts.Replace {
			_, err := e.store.Get(course.ID)
			if err == nil {
				result.Skipped++
				e.sendProgress(progress, skipCourseUpdate(step, len(courses), &course))
				continue
			}
			if !errors.Is(err, shared.ErrCourseNotFound) {
				result.Failed = append(result.Failed, ImportFailure{CourseID: course.ID, Error: err})
				e.sendProgress(progress, importFailedUpdate(step, len(courses), &course, err))
				continue
			}
		}

		if err := e.store.Create(&course); err != nil {
			result.Failed = append(result.Failed, ImportFailure{CourseID: course.ID, Error: err})
			e.sendProgress(progress, importFailedUpdate(step, len(courses), &course, err))
			continue
		}

		result.Imported++
		e.sendProgress(progress, importCourseUpdate(step, len(courses), &course))
	}

	return result, nil
}

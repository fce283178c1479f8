package tasks

import (
	"fmt"

	"github.com/desertthunder/nova/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ClearCatalog Phase = iota
	ImportCourses
	ExportCourses
	WriteManifest
)

func (p Phase) String() string {
	switch p {
	case ClearCatalog:
		return "clear_catalog"
	case ImportCourses:
		return "import_courses"
	case ExportCourses:
		return "export_courses"
	case WriteManifest:
		return "write_manifest"
	default:
		return ""
	}
}

func clearCatalogUpdate(removed int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ClearCatalog,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Cleared %d existing courses", removed),
	}
}

func importCourseUpdate(step, total int, course *models.Course) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ImportCourses,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s (%d lessons)", step, total, course.Title, len(course.Videos)),
		Data:    course.ID,
	}
}

func skipCourseUpdate(step, total int, course *models.Course) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ImportCourses,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] - %s already imported", step, total, course.Title),
		Data:    course.ID,
	}
}

func importFailedUpdate(step, total int, course *models.Course, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ImportCourses,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, course.Title, err),
		Data:    course.ID,
	}
}

func exportingCourseUpdate(step, total int, title string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportCourses,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Exporting: %s...", step, total, title),
	}
}

func exportCompletedUpdate(step, total int, title string, filesCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportCourses,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d files)", step, total, title, filesCount),
	}
}

func exportFailedUpdate(step, total int, title string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportCourses,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, title, err),
	}
}

func manifestUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Manifest written to %s", path),
		Data:    path,
	}
}

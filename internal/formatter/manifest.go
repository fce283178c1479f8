package formatter

import (
	"fmt"
	"os"
	"time"

	"github.com/desertthunder/nova/internal/shared"
)

// CourseExportResult records the outcome of exporting one course.
type CourseExportResult struct {
	CourseID    string
	CourseTitle string
	Success     bool
	Files       []string
	Error       error
}

// BulkExportResult summarizes a multi-course export.
type BulkExportResult struct {
	TotalCourses      int
	SuccessfulExports int
	FailedExports     int
	Results           []CourseExportResult
	OutputDirectory   string
	ManifestPath      string
}

type manifestEntry struct {
	CourseID    string   `json:"course_id"`
	CourseTitle string   `json:"course_title"`
	Status      string   `json:"status"`
	Files       []string `json:"files,omitempty"`
	Error       string   `json:"error,omitempty"`
}

type manifest struct {
	Format            string          `json:"format"`
	ExportedAt        time.Time       `json:"exported_at"`
	TotalCourses      int             `json:"total_courses"`
	SuccessfulExports int             `json:"successful_exports"`
	FailedExports     int             `json:"failed_exports"`
	Courses           []manifestEntry `json:"courses"`
}

// WriteBulkExportManifest writes a JSON summary of result to path.
func WriteBulkExportManifest(result *BulkExportResult, format, path string) error {
	m := manifest{
		Format:            format,
		ExportedAt:        time.Now().UTC(),
		TotalCourses:      result.TotalCourses,
		SuccessfulExports: result.SuccessfulExports,
		FailedExports:     result.FailedExports,
		Courses:           make([]manifestEntry, 0, len(result.Results)),
	}

	for _, r := range result.Results {
		entry := manifestEntry{
			CourseID:    r.CourseID,
			CourseTitle: r.CourseTitle,
			Status:      "success",
			Files:       r.Files,
		}
		if !r.Success {
			entry.Status = "failed"
			if r.Error != nil {
				entry.Error = r.Error.Error()
			}
		}
		m.Courses = append(m.Courses, entry)
	}

	data, err := shared.MarshalJSON(m, true)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/desertthunder/nova/internal/formatter"
	"github.com/desertthunder/nova/internal/models"
	"golang.org/x/time/rate"
)

// BulkExportOpts contains configuration for bulk course exports.
type BulkExportOpts struct {
	Format        string  // Export format: json, csv, markdown, txt
	OutputDir     string  // Base output directory (default: nova_export_{epoch})
	NumWorkers    int     // Concurrent workers (default: 5)
	RateLimit     float64 // Jobs dispatched per second (default: 5)
	IncludeCovers bool    // Download cover images for markdown exports
}

type courseExportJob struct {
	Course models.Course
}

// BulkExport exports multiple courses concurrently with rate limiting and progress tracking.
//
// This method implements a worker pool pattern. Partial failures are recorded per course and a manifest file
// summarizing the export results is written to the output directory.
func (e *CatalogEngine) BulkExport(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	courses []models.Course,
	opts BulkExportOpts,
) (*formatter.BulkExportResult, error) {
	format, err := formatter.ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}
	opts.Format = format

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("nova_export_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &formatter.BulkExportResult{
		TotalCourses:    len(courses),
		OutputDirectory: opts.OutputDir,
		Results:         make([]formatter.CourseExportResult, 0, len(courses)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan courseExportJob, len(courses))
	results := make(chan formatter.CourseExportResult, len(courses))

	var wg sync.WaitGroup
	for range opts.NumWorkers {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		defer close(jobs)
		for i, course := range courses {
			if err := limiter.Wait(ctx); err != nil {
				return
			}

			jobs <- courseExportJob{Course: course}
			e.sendProgress(prog, exportingCourseUpdate(i+1, len(courses), course.Title))
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(completed, len(courses), res.CourseTitle, len(res.Files)))
		} else {
			result.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(completed, len(courses), res.CourseTitle, res.Error))
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	if err := formatter.WriteBulkExportManifest(result, opts.Format, manifestPath); err != nil {
		return result, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	e.sendProgress(prog, manifestUpdate(manifestPath))
	return result, nil
}

// exportWorker is a worker goroutine that exports courses from the jobs channel.
func (e *CatalogEngine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan courseExportJob,
	results chan<- formatter.CourseExportResult,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results <- exportSingleCourse(job, opts)
	}
}

// exportSingleCourse exports a single course to the appropriate format.
func exportSingleCourse(j courseExportJob, opts BulkExportOpts) formatter.CourseExportResult {
	course := &j.Course
	result := formatter.CourseExportResult{
		CourseID:    course.ID,
		CourseTitle: course.Title,
		Files:       []string{},
	}

	switch opts.Format {
	case formatter.FormatCSV:
		csvRes, err := formatter.WriteCSVExport(course, filepath.Join(opts.OutputDir, course.ID))
		if err != nil {
			result.Error = fmt.Errorf("CSV export failed: %w", err)
			return result
		}
		result.Files = []string{csvRes.LessonsFile, csvRes.MetadataFile}

	case formatter.FormatMarkdown:
		var imageURL string
		if opts.IncludeCovers {
			imageURL = course.Cover
		}

		mdRes, err := formatter.WriteMarkdownExport(course, filepath.Join(opts.OutputDir, course.ID), imageURL)
		if err != nil {
			result.Error = fmt.Errorf("markdown export failed: %w", err)
			return result
		}
		result.Files = mdRes.Files

	case formatter.FormatText:
		path, err := formatter.WriteTextExport(course, filepath.Join(opts.OutputDir, course.ID+"_lessons.txt"))
		if err != nil {
			result.Error = fmt.Errorf("text export failed: %w", err)
			return result
		}
		result.Files = []string{path}

	default:
		path, err := formatter.WriteJSONExport(course, filepath.Join(opts.OutputDir, course.ID+".json"))
		if err != nil {
			result.Error = fmt.Errorf("JSON export failed: %w", err)
			return result
		}
		result.Files = []string{path}
	}

	result.Success = true
	return result
}

package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/nova/internal/formatter"
	"github.com/desertthunder/nova/internal/shared"
	tu "github.com/desertthunder/nova/internal/testing"
)

func TestBulkExport(t *testing.T) {
	tests := []struct {
		name           string
		format         string
		validateResult func(t *testing.T, result *formatter.BulkExportResult, dir string)
	}{
		{
			name:   "json export",
			format: "json",
			validateResult: func(t *testing.T, result *formatter.BulkExportResult, dir string) {
				for _, res := range result.Results {
					if len(res.Files) != 1 {
						t.Errorf("%s: expected 1 file, got %d", res.CourseID, len(res.Files))
					}
				}
				tu.AssertFileExists(t, filepath.Join(dir, "ml-foundations.json"))
			},
		},
		{
			name:   "csv export",
			format: "csv",
			validateResult: func(t *testing.T, result *formatter.BulkExportResult, dir string) {
				for _, res := range result.Results {
					if len(res.Files) != 2 {
						t.Errorf("CSV export should create 2 files, got %d", len(res.Files))
					}
				}
				tu.AssertFileExists(t, filepath.Join(dir, "fullstack-web_lessons.csv"))
			},
		},
		{
			name:   "markdown export",
			format: "md",
			validateResult: func(t *testing.T, result *formatter.BulkExportResult, dir string) {
				tu.AssertFileExists(t, filepath.Join(dir, "career-launch", "README.md"))
			},
		},
		{
			name:   "text export",
			format: "txt",
			validateResult: func(t *testing.T, result *formatter.BulkExportResult, dir string) {
				tu.AssertFileExists(t, filepath.Join(dir, "ml-foundations_lessons.txt"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			progress := make(chan ProgressUpdate, 32)

			result, err := NewCatalogEngine(nil).BulkExport(context.Background(), progress, tu.FixtureCourses(), BulkExportOpts{
				Format:     tt.format,
				OutputDir:  dir,
				NumWorkers: 2,
				RateLimit:  100,
			})
			if err != nil {
				t.Fatalf("bulk export failed: %v", err)
			}

			if result.SuccessfulExports != 3 || result.FailedExports != 0 {
				t.Errorf("expected 3 successes, got %d/%d", result.SuccessfulExports, result.FailedExports)
			}
			if result.ManifestPath != filepath.Join(dir, "export_manifest.json") {
				t.Errorf("unexpected manifest path %s", result.ManifestPath)
			}
			tu.AssertFileExists(t, result.ManifestPath)
			tt.validateResult(t, result, dir)

			updates := drain(progress)
			if last := updates[len(updates)-1]; last.Phase != WriteManifest {
				t.Errorf("expected manifest update last, got %s", last.Phase)
			}
		})
	}

	t.Run("invalid format", func(t *testing.T) {
		_, err := NewCatalogEngine(nil).BulkExport(context.Background(), nil, tu.FixtureCourses(), BulkExportOpts{Format: "pdf", OutputDir: t.TempDir()})
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("partial failure", func(t *testing.T) {
		dir := t.TempDir()
		// A directory where the JSON file should go makes that one write fail.
		if err := os.Mkdir(filepath.Join(dir, "fullstack-web.json"), 0755); err != nil {
			t.Fatal(err)
		}

		result, err := NewCatalogEngine(nil).BulkExport(context.Background(), nil, tu.FixtureCourses(), BulkExportOpts{OutputDir: dir, RateLimit: 100})
		if err != nil {
			t.Fatalf("bulk export failed: %v", err)
		}
		if result.SuccessfulExports != 2 || result.FailedExports != 1 {
			t.Errorf("expected 2/1, got %d/%d", result.SuccessfulExports, result.FailedExports)
		}

		manifest := tu.MustReadFile(t, result.ManifestPath)
		if !strings.Contains(manifest, `"status": "failed"`) {
			t.Error("manifest should record the failure")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewCatalogEngine(nil).BulkExport(ctx, nil, tu.FixtureCourses(), BulkExportOpts{OutputDir: t.TempDir()})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

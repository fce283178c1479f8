package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/shared"
	th "github.com/desertthunder/nova/internal/testing"
)

func fixtureCourse() *models.Course {
	course := th.FixtureCourses()[0]
	return &course
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(fixtureCourse())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Lesson,ID,Title,Length,URL") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "1,ml-01,What is machine learning?,12:04,https://example.com/ml-01.mp4") {
			t.Errorf("CSV missing first lesson, got: %s", output)
		}
		if lines := strings.Count(output, "\n"); lines != 4 {
			t.Errorf("expected header plus 3 lessons, got %d lines", lines)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		t.Run("without cover image", func(t *testing.T) {
			data, err := ExportToMarkdown(fixtureCourse(), "")
			if err != nil {
				t.Fatalf("ExportToMarkdown failed: %v", err)
			}

			output := string(data)
			for _, want := range []string{
				"# Machine Learning Foundations",
				"**Mentor**: Dr. Amara Osei",
				"**Learners**: 48,210",
				"**Rating**: 4.86 (6,120 reviews)",
				"- scikit-learn",
				"2. Linear regression [18:32]",
			} {
				if !strings.Contains(output, want) {
					t.Errorf("Markdown missing %q", want)
				}
			}
			if strings.Contains(output, "![Cover]") {
				t.Error("Markdown should not reference a cover")
			}
		})

		t.Run("with cover image", func(t *testing.T) {
			data, _ := ExportToMarkdown(fixtureCourse(), "cover.jpg")
			if !strings.Contains(string(data), "![Cover](cover.jpg)") {
				t.Error("Markdown missing cover image")
			}
		})

		t.Run("without lessons", func(t *testing.T) {
			course := th.FixtureCourses()[2]
			data, _ := ExportToMarkdown(&course, "")
			if !strings.Contains(string(data), "_No lessons yet._") {
				t.Error("expected empty lesson note")
			}
			if strings.Contains(string(data), "## Skills") {
				t.Error("expected no skills section")
			}
		})
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(fixtureCourse())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Course: Machine Learning Foundations") {
			t.Error("Text missing course title")
		}
		if !strings.Contains(output, "Lessons: 3") {
			t.Error("Text missing lesson count")
		}
		if !strings.Contains(output, "03. Gradient descent") {
			t.Error("Text missing two-digit lesson numbers")
		}
	})

	t.Run("ToMetadataJSON", func(t *testing.T) {
		course := fixtureCourse()
		data, err := ToMetadataJSON(*course)
		if err != nil {
			t.Fatalf("ToMetadataJSON failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, `"ml-foundations"`) {
			t.Error("metadata missing course id")
		}
		if strings.Contains(output, "ml-01") {
			t.Error("metadata should not include lessons")
		}
		if len(course.Videos) != 3 {
			t.Error("ToMetadataJSON must not modify its argument")
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(fixtureCourse())
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, `"Machine Learning Foundations"`) {
			t.Errorf("JSON missing course title")
		}
		if !strings.Contains(output, `"ml-03"`) {
			t.Errorf("JSON missing lessons")
		}
	})
}

func TestFormatHelpers(t *testing.T) {
	t.Run("ParseFormat", func(t *testing.T) {
		tc := map[string]string{
			"csv":      FormatCSV,
			"md":       FormatMarkdown,
			"Markdown": FormatMarkdown,
			"txt":      FormatText,
			"text":     FormatText,
			"":         FormatJSON,
			"json":     FormatJSON,
		}
		for in, want := range tc {
			got, err := ParseFormat(in)
			if err != nil || got != want {
				t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
			}
		}

		if _, err := ParseFormat("pdf"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("FormatRating", func(t *testing.T) {
		if got := FormatRating(4.857, 1); got != "4.9" {
			t.Errorf("expected 4.9, got %s", got)
		}
		if got := FormatRating(4.857, 2); got != "4.86" {
			t.Errorf("expected 4.86, got %s", got)
		}
	})

	t.Run("RenderMarkdown", func(t *testing.T) {
		out := RenderMarkdown("# Heading\n\nSome **bold** text.", 40)
		if !strings.Contains(out, "Heading") || !strings.Contains(out, "bold") {
			t.Errorf("rendered output lost content: %q", out)
		}
	})
}

func TestDownloadImage(t *testing.T) {
	t.Run("EmptyURL", func(t *testing.T) {
		_, err := DownloadImage("")
		if err == nil {
			t.Error("DownloadImage with empty URL should return error")
		}
	})
}

func TestWriters(t *testing.T) {
	t.Run("WriteCSVExport", func(t *testing.T) {
		t.Run("WithDefaultPath", func(t *testing.T) {
			tempDir := t.TempDir()
			originalDir := th.MustGetwd(t)
			th.MustChdir(t, tempDir)
			defer th.MustChdir(t, originalDir)

			result, err := WriteCSVExport(fixtureCourse(), "")
			if err != nil {
				t.Fatalf("WriteCSVExport failed: %v", err)
			}

			if result.LessonsFile != "ml-foundations_lessons.csv" {
				t.Errorf("Expected 'ml-foundations_lessons.csv', got '%s'", result.LessonsFile)
			}
			if result.MetadataFile != "ml-foundations_metadata.json" {
				t.Errorf("Expected 'ml-foundations_metadata.json', got '%s'", result.MetadataFile)
			}

			th.AssertFileExists(t, result.LessonsFile)
			th.AssertFileExists(t, result.MetadataFile)
		})

		t.Run("WithCustomPath", func(t *testing.T) {
			tempDir := t.TempDir()
			originalDir := th.MustGetwd(t)
			th.MustChdir(t, tempDir)
			defer th.MustChdir(t, originalDir)

			result, err := WriteCSVExport(fixtureCourse(), "custom")
			if err != nil {
				t.Fatalf("WriteCSVExport failed: %v", err)
			}
			if result.LessonsFile != "custom_lessons.csv" {
				t.Errorf("Expected 'custom_lessons.csv', got '%s'", result.LessonsFile)
			}
		})
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		t.Run("WithDefaultDirectory", func(t *testing.T) {
			tempDir := t.TempDir()
			originalDir := th.MustGetwd(t)
			th.MustChdir(t, tempDir)
			defer th.MustChdir(t, originalDir)

			result, err := WriteMarkdownExport(fixtureCourse(), "", "")
			if err != nil {
				t.Fatalf("WriteMarkdownExport failed: %v", err)
			}

			if result.Directory != "ml-foundations" {
				t.Errorf("Expected directory 'ml-foundations', got '%s'", result.Directory)
			}
			if len(result.Files) != 1 {
				t.Errorf("Expected 1 file, got %d", len(result.Files))
			}

			th.AssertDirExists(t, result.Directory)
			content := th.MustReadFile(t, result.Files[0])
			if !strings.Contains(content, "# Machine Learning Foundations") {
				t.Errorf("README missing course title")
			}
		})

		t.Run("WithCustomDirectory", func(t *testing.T) {
			tempDir := t.TempDir()
			originalDir := th.MustGetwd(t)
			th.MustChdir(t, tempDir)
			defer th.MustChdir(t, originalDir)

			result, err := WriteMarkdownExport(fixtureCourse(), "docs/ml", "")
			if err != nil {
				t.Fatalf("WriteMarkdownExport failed: %v", err)
			}
			th.AssertFileExists(t, "docs/ml/README.md")
			if result.CoverImage != "" {
				t.Error("expected no cover image without url")
			}
		})
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		path, err := WriteTextExport(fixtureCourse(), "")
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if path != "ml-foundations_lessons.txt" {
			t.Errorf("Expected 'ml-foundations_lessons.txt', got '%s'", path)
		}
		th.AssertFileExists(t, path)
	})

	t.Run("WriteJSONExport", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		path, err := WriteJSONExport(fixtureCourse(), "my_export.json")
		if err != nil {
			t.Fatalf("WriteJSONExport failed: %v", err)
		}
		if path != "my_export.json" {
			t.Errorf("Expected 'my_export.json', got '%s'", path)
		}

		content := th.MustReadFile(t, path)
		if !strings.Contains(content, `"ml-foundations"`) {
			t.Errorf("JSON missing course id")
		}
	})

	t.Run("WriteBulkExportManifest", func(t *testing.T) {
		t.Run("SuccessfulExport", func(t *testing.T) {
			path := t.TempDir() + "/manifest.json"

			result := &BulkExportResult{
				TotalCourses:      2,
				SuccessfulExports: 2,
				Results: []CourseExportResult{
					{CourseID: "ml-foundations", CourseTitle: "Machine Learning Foundations", Success: true, Files: []string{"ml-foundations_lessons.csv"}},
					{CourseID: "fullstack-web", CourseTitle: "Full-Stack Web Development", Success: true, Files: []string{"fullstack-web_lessons.csv"}},
				},
			}

			if err := WriteBulkExportManifest(result, "csv", path); err != nil {
				t.Fatalf("WriteBulkExportManifest failed: %v", err)
			}

			content := th.MustReadFile(t, path)
			for _, want := range []string{`"format": "csv"`, `"total_courses": 2`, `"successful_exports": 2`, `"ml-foundations"`, `"status": "success"`} {
				if !strings.Contains(content, want) {
					t.Errorf("Manifest missing %s", want)
				}
			}
		})

		t.Run("WithFailedExports", func(t *testing.T) {
			path := t.TempDir() + "/manifest.json"

			result := &BulkExportResult{
				TotalCourses:      2,
				SuccessfulExports: 1,
				FailedExports:     1,
				Results: []CourseExportResult{
					{CourseID: "a", CourseTitle: "A", Success: true, Files: []string{"a.json"}},
					{CourseID: "b", CourseTitle: "B", Success: false, Error: errors.New("disk full")},
				},
			}

			if err := WriteBulkExportManifest(result, "markdown", path); err != nil {
				t.Fatalf("WriteBulkExportManifest failed: %v", err)
			}

			content := th.MustReadFile(t, path)
			for _, want := range []string{`"failed_exports": 1`, `"status": "failed"`, `"error": "disk full"`} {
				if !strings.Contains(content, want) {
					t.Errorf("Manifest missing %s", want)
				}
			}
		})

		t.Run("UnwritablePath", func(t *testing.T) {
			err := WriteBulkExportManifest(&BulkExportResult{}, "json", t.TempDir()+"/missing/manifest.json")
			if err == nil {
				t.Error("expected write error")
			}
		})
	})
}

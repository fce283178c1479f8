// package formatter provides functions to export course data to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/shared"
)

// Export formats accepted by [ParseFormat].
const (
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatText     = "txt"
	FormatJSON     = "json"
)

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "txt", "text":
		return FormatText, nil
	case "", "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: export format %q", shared.ErrInvalidArgument, s)
	}
}

// FormatRating renders a rating with the given number of decimals (4.857, 1 → "4.9").
func FormatRating(rating float64, decimals int) string {
	return strconv.FormatFloat(rating, 'f', decimals, 64)
}

// ExportToCSV converts a course playlist to CSV format with columns: Lesson, ID, Title, Length, URL
func ExportToCSV(course *models.Course) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Lesson", "ID", "Title", "Length", "URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, video := range course.Videos {
		record := []string{
			strconv.Itoa(i + 1),
			video.ID,
			video.Title,
			video.Length,
			video.URL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a course to Markdown format with optional cover image
func ExportToMarkdown(course *models.Course, imageFilename string) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", course.Title)

	if imageFilename != "" {
		fmt.Fprintf(&buf, "![Cover](%s)\n\n", imageFilename)
	}

	if course.Description != "" {
		fmt.Fprintf(&buf, "%s\n\n", course.Description)
	}

	fmt.Fprintf(&buf, "**Category**: %s\n", course.Category)
	if course.Instructor != "" {
		fmt.Fprintf(&buf, "**Mentor**: %s\n", course.Instructor)
	}
	if course.Level != "" {
		fmt.Fprintf(&buf, "**Level**: %s\n", course.Level)
	}
	if course.Duration != "" {
		fmt.Fprintf(&buf, "**Duration**: %s\n", course.Duration)
	}
	fmt.Fprintf(&buf, "**Learners**: %s\n", shared.FormatCount(course.Students))
	fmt.Fprintf(&buf, "**Rating**: %s (%s reviews)\n\n", FormatRating(course.Rating, 2), shared.FormatCount(course.Reviews))

	if len(course.Skills) > 0 {
		buf.WriteString("## Skills\n\n")
		for _, skill := range course.Skills {
			fmt.Fprintf(&buf, "- %s\n", skill)
		}
		buf.WriteString("\n")
	}

	buf.WriteString("## Lessons\n\n")
	if len(course.Videos) == 0 {
		buf.WriteString("_No lessons yet._\n")
	}
	for i, video := range course.Videos {
		lengthPart := ""
		if video.Length != "" {
			lengthPart = fmt.Sprintf(" [%s]", video.Length)
		}
		fmt.Fprintf(&buf, "%d. %s%s\n", i+1, video.Title, lengthPart)
	}

	return buf.Bytes(), nil
}

// ExportToText converts a course to plain text format
func ExportToText(course *models.Course) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Course: %s\n", course.Title)
	if course.Description != "" {
		fmt.Fprintf(&buf, "Description: %s\n", course.Description)
	}
	fmt.Fprintf(&buf, "Lessons: %d\n\n", len(course.Videos))

	for i, video := range course.Videos {
		fmt.Fprintf(&buf, "%02d. %s\n", i+1, video.Title)
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a course, lessons included, to indented JSON
func ExportToJSON(course *models.Course) ([]byte, error) {
	return shared.MarshalJSON(course, true)
}

// DownloadImage downloads an image from the given URL and returns the raw bytes
func DownloadImage(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL provided")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}

// ToMetadataJSON generates a JSON representation of course metadata (without lessons)
func ToMetadataJSON(course models.Course) ([]byte, error) {
	course.Videos = nil
	return shared.MarshalJSON(course, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	LessonsFile  string
	MetadataFile string
}

// WriteCSVExport exports a course playlist to CSV format with accompanying metadata JSON file.
//
// Defaults to the course ID as the base filename & creates {base}_lessons.csv and {base}_metadata.json
func WriteCSVExport(course *models.Course, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = course.ID
	}

	csvData, err := ExportToCSV(course)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	lessonsFile := baseFilepath + "_lessons.csv"
	if err := os.WriteFile(lessonsFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(*course)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		LessonsFile:  lessonsFile,
		MetadataFile: metadataFile,
	}, nil
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory  string
	Files      []string
	CoverImage string
}

// WriteMarkdownExport exports a course to Markdown format in a dedicated directory.
//
// Directory name defaults to the course ID.
// The imageURL parameter is optional - if provided, attempts to download the cover image.
// Creates a directory structure: {dir}/README.md and optionally {dir}/cover.jpg
func WriteMarkdownExport(course *models.Course, outputDir string, imageURL string) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = course.ID
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &MarkdownExportResult{
		Directory: outputDir,
		Files:     []string{},
	}

	var coverImageFilename string
	if imageURL != "" {
		imageData, err := DownloadImage(imageURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to download cover image: %v\n", err)
		} else {
			coverImageFilename = "cover.jpg"
			coverImagePath := filepath.Join(outputDir, coverImageFilename)
			if err := os.WriteFile(coverImagePath, imageData, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save cover image: %v\n", err)
				coverImageFilename = ""
			} else {
				result.CoverImage = coverImagePath
				result.Files = append(result.Files, coverImagePath)
			}
		}
	}

	mdData, err := ExportToMarkdown(course, coverImageFilename)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := filepath.Join(outputDir, "README.md")
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	result.Files = append(result.Files, mdFile)

	return result, nil
}

// WriteTextExport exports a course to plain text format.
//
// Defaults to {course.ID}_lessons.txt as the filename.
func WriteTextExport(course *models.Course, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("%s_lessons.txt", course.ID)
	}

	textData, err := ExportToText(course)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(path, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return path, nil
}

// WriteJSONExport exports a course to JSON.
//
// Defaults to {course.ID}.json as the filename.
func WriteJSONExport(course *models.Course, path string) (string, error) {
	if path == "" {
		path = course.ID + ".json"
	}

	data, err := ExportToJSON(course)
	if err != nil {
		return "", fmt.Errorf("failed to generate JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}

	return path, nil
}

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertthunder/nova/internal/shared"
)

func TestLoad(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		c, err := Default()
		if err != nil {
			t.Fatalf("embedded catalog should load: %v", err)
		}
		if c.Len() == 0 {
			t.Fatal("embedded catalog should not be empty")
		}

		course, err := c.Find("ml-foundations")
		if err != nil {
			t.Fatalf("expected ml-foundations: %v", err)
		}
		if len(course.Videos) == 0 {
			t.Error("expected ml-foundations to have videos")
		}
		if course.Videos[0].Length == "" {
			t.Error("expected video length to be decoded")
		}
	})

	t.Run("FormatFromPath", func(t *testing.T) {
		tc := map[string]Format{
			"courses.toml": FormatTOML,
			"courses.yaml": FormatYAML,
			"courses.YML":  FormatYAML,
			"courses.json": FormatJSON,
		}
		for path, want := range tc {
			got, err := FormatFromPath(path)
			if err != nil || got != want {
				t.Errorf("FormatFromPath(%s) = %v, %v; want %v", path, got, err, want)
			}
		}

		if _, err := FormatFromPath("courses.csv"); !errors.Is(err, shared.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})

	t.Run("LoadFile YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "courses.yaml")
		doc := `courses:
  - id: go-basics
    title: Go Basics
    category: Backend
    rating: 4.5
    skills: [goroutines, channels]
    videos:
      - title: Hello, Go
        url: https://example.com/hello.mp4
        length: "05:00"
`
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}

		c, err := LoadFile(path)
		if err != nil {
			t.Fatalf("failed to load yaml: %v", err)
		}
		course, err := c.Find("go-basics")
		if err != nil {
			t.Fatal(err)
		}
		if course.Videos[0].Key() != "https://example.com/hello.mp4" {
			t.Errorf("expected URL to be used as key, got %s", course.Videos[0].Key())
		}
	})

	t.Run("LoadFile JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "courses.json")
		doc := `{"courses": [{"id": "a", "title": "A", "category": "X", "rating": 3}, {"id": "b", "title": "B", "category": "Y"}]}`
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}

		c, err := LoadFile(path)
		if err != nil {
			t.Fatalf("failed to load json: %v", err)
		}
		if c.Len() != 2 {
			t.Errorf("expected 2 courses, got %d", c.Len())
		}
	})

	t.Run("Decode invalid document", func(t *testing.T) {
		if _, err := Decode([]byte("courses = ["), FormatTOML); err == nil {
			t.Error("expected parse error")
		}
		if _, err := Decode([]byte("{}"), Format("xml")); !errors.Is(err, shared.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
	})

	t.Run("LoadFile missing", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected read error")
		}
	})
}

// package models defines the data model for the course catalog and chat transcript
package models

import (
	"fmt"
	"slices"
)

// Course is a single catalog entry.
type Course struct {
	ID          string   `toml:"id" yaml:"id" json:"id"`
	Title       string   `toml:"title" yaml:"title" json:"title"`
	Description string   `toml:"description" yaml:"description" json:"description"`
	Category    string   `toml:"category" yaml:"category" json:"category"`
	Accent      string   `toml:"accent" yaml:"accent" json:"accent"`
	Cover       string   `toml:"cover" yaml:"cover" json:"cover"`
	Instructor  string   `toml:"instructor" yaml:"instructor" json:"instructor"`
	Duration    string   `toml:"duration" yaml:"duration" json:"duration"`
	Level       string   `toml:"level" yaml:"level" json:"level"`
	Students    int      `toml:"students" yaml:"students" json:"students"`
	Rating      float64  `toml:"rating" yaml:"rating" json:"rating"`
	Reviews     int      `toml:"reviews" yaml:"reviews" json:"reviews"`
	Skills      []string `toml:"skills" yaml:"skills" json:"skills"`
	Videos      []Video  `toml:"videos" yaml:"videos" json:"videos"`
}

// Video is one lesson in a course playlist.
type Video struct {
	ID     string `toml:"id" yaml:"id" json:"id,omitempty"`
	Title  string `toml:"title" yaml:"title" json:"title"`
	URL    string `toml:"url" yaml:"url" json:"url"`
	Poster string `toml:"poster" yaml:"poster" json:"poster,omitempty"`
	Length string `toml:"length" yaml:"length" json:"length,omitempty"`
}

// Key identifies the video within its playlist, falling back to the media URL when no ID is set.
func (v Video) Key() string {
	if v.ID != "" {
		return v.ID
	}
	return v.URL
}

// Clone returns a deep copy so callers cannot mutate catalog-owned slices.
func (c Course) Clone() Course {
	c.Skills = slices.Clone(c.Skills)
	c.Videos = slices.Clone(c.Videos)
	return c
}

// SkillSummary joins the first three skills, or returns the description when the course has none.
func (c Course) SkillSummary() string {
	if len(c.Skills) == 0 {
		return c.Description
	}
	n := min(3, len(c.Skills))
	out := c.Skills[0]
	for _, s := range c.Skills[1:n] {
		out += ", " + s
	}
	return out
}

// Validate checks the fields the catalog relies on.
func (c Course) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("course %q: missing id", c.Title)
	}
	if c.Rating < 0 || c.Rating > 5 {
		return fmt.Errorf("course %s: rating %.2f out of range [0, 5]", c.ID, c.Rating)
	}
	if c.Students < 0 || c.Reviews < 0 {
		return fmt.Errorf("course %s: negative counts", c.ID)
	}
	return nil
}

// Author identifies who wrote a [ChatMessage].
type Author string

const (
	AuthorUser Author = "user"
	AuthorBot  Author = "bot"
)

// ChatMessage is one immutable transcript entry.
type ChatMessage struct {
	ID     string `json:"id"`
	Author Author `json:"author"`
	Text   string `json:"text"`
}

// Question is the body sent to the answering service.
type Question struct {
	Query string `json:"query"`
}

// Answer is the answering service's reply.
type Answer struct {
	Text    string   `json:"answer"`
	Sources []Source `json:"sources,omitempty"`
}

// Source points at the course material an answer was drawn from.
type Source struct {
	Filename string `json:"filename"`
	Page     int    `json:"page"`
	Chunk    int    `json:"chunk"`
}

// String renders the source as "file p.N #M".
func (s Source) String() string {
	return fmt.Sprintf("%s p.%d #%d", s.Filename, s.Page, s.Chunk)
}

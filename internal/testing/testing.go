// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/nova/internal/models"
)

// MockAsker is a test double for [services.Asker]. It records every query and replies with Answer or Err.
type MockAsker struct {
	mu      sync.Mutex
	Answer  *models.Answer
	Err     error
	Queries []string
}

func NewMockAsker(answer string, err error) *MockAsker {
	return &MockAsker{Answer: &models.Answer{Text: answer}, Err: err}
}

func (m *MockAsker) Ask(ctx context.Context, query string) (*models.Answer, error) {
	m.mu.Lock()
	m.Queries = append(m.Queries, query)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.Answer, nil
}

// Calls returns how many questions were asked.
func (m *MockAsker) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Queries)
}

// FixtureCourses returns a small catalog covering two categories and a course without videos.
func FixtureCourses() []models.Course {
	return []models.Course{
		{
			ID:          "ml-foundations",
			Title:       "Machine Learning Foundations",
			Description: "Supervised learning from first principles.",
			Category:    "AI & ML",
			Accent:      "#5B3CC4",
			Instructor:  "Dr. Amara Osei",
			Duration:    "14h 20m",
			Level:       "Beginner",
			Students:    48210,
			Rating:      4.86,
			Reviews:     6120,
			Skills:      []string{"Python", "scikit-learn", "Model evaluation", "Feature engineering"},
			Videos: []models.Video{
				{ID: "ml-01", Title: "What is machine learning?", URL: "https://example.com/ml-01.mp4", Length: "12:04"},
				{ID: "ml-02", Title: "Linear regression", URL: "https://example.com/ml-02.mp4", Length: "18:32"},
				{ID: "ml-03", Title: "Gradient descent", URL: "https://example.com/ml-03.mp4", Length: "15:47"},
			},
		},
		{
			ID:          "fullstack-web",
			Title:       "Full-Stack Web Development",
			Description: "Build and deploy a web application.",
			Category:    "Web Development",
			Accent:      "#C2410C",
			Instructor:  "Lucas Moreau",
			Duration:    "22h 15m",
			Level:       "Beginner",
			Students:    93150,
			Rating:      4.91,
			Reviews:     12044,
			Skills:      []string{"HTML & CSS", "React"},
			Videos: []models.Video{
				{Title: "How the web works", URL: "https://example.com/web-01.mp4", Length: "09:58"},
			},
		},
		{
			ID:          "career-launch",
			Title:       "Career Launch",
			Description: "Portfolios, interviews and negotiation.",
			Category:    "Career",
			Instructor:  "Marcus Bell",
			Students:    15877,
			Rating:      4.79,
			Reviews:     1402,
		},
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

package catalog

import "github.com/desertthunder/nova/internal/models"

// Landing holds the landing page view state: the active category and the featured course.
type Landing struct {
	catalog  *Catalog
	category string
	visible  []models.Course
	featured string
}

// NewLanding starts on [AllCategory] with the first course featured.
func NewLanding(c *Catalog) *Landing {
	l := &Landing{catalog: c}
	l.SetCategory(AllCategory)
	return l
}

// Category returns the active category filter.
func (l *Landing) Category() string { return l.category }

// Categories returns the filter options.
func (l *Landing) Categories() []string { return l.catalog.Categories() }

// Visible returns the courses matching the active filter.
func (l *Landing) Visible() []models.Course { return l.visible }

// SetCategory changes the filter and repairs the featured course.
//
// A featured course that is no longer visible resets to the first visible course,
// or to none when the filter matches nothing.
func (l *Landing) SetCategory(category string) {
	l.category = category
	l.visible = l.catalog.Filter(category)

	if l.indexOf(l.featured) >= 0 {
		return
	}
	l.featured = ""
	if len(l.visible) > 0 {
		l.featured = l.visible[0].ID
	}
}

// CycleCategory moves the filter by delta positions, wrapping around the option list.
func (l *Landing) CycleCategory(delta int) {
	options := l.Categories()
	current := 0
	for i, c := range options {
		if c == l.category {
			current = i
			break
		}
	}
	next := ((current+delta)%len(options) + len(options)) % len(options)
	l.SetCategory(options[next])
}

// Feature highlights a visible course without navigating.
// It reports false, leaving state untouched, when id is not visible.
func (l *Landing) Feature(id string) bool {
	if l.indexOf(id) < 0 {
		return false
	}
	l.featured = id
	return true
}

// Featured returns the featured course, if any.
func (l *Landing) Featured() (models.Course, bool) {
	i := l.indexOf(l.featured)
	if i < 0 {
		return models.Course{}, false
	}
	return l.visible[i], true
}

// FeaturedIndex returns the featured course's position in [Landing.Visible], or -1.
func (l *Landing) FeaturedIndex() int { return l.indexOf(l.featured) }

func (l *Landing) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, c := range l.visible {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Hero returns the featured course for the landing hero, or nil when nothing is visible.
func (l *Landing) Hero() *models.Course {
	course, ok := l.Featured()
	if !ok {
		return nil
	}
	return &course
}

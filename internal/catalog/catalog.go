package catalog

import (
	"fmt"
	"slices"

	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/shared"
)

// AllCategory is the sentinel filter value that selects every course.
const AllCategory = "All"

// Catalog is an immutable, ordered collection of courses.
type Catalog struct {
	courses    []models.Course
	index      map[string]int
	categories []string
}

// New validates courses and returns a catalog owning a deep copy of them.
func New(courses []models.Course) (*Catalog, error) {
	c := &Catalog{
		courses:    make([]models.Course, 0, len(courses)),
		index:      make(map[string]int, len(courses)),
		categories: []string{AllCategory},
	}

	seen := map[string]bool{}
	for _, course := range courses {
		if err := course.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrInvalidCatalog, err)
		}
		if _, dup := c.index[course.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate course id %q", shared.ErrInvalidCatalog, course.ID)
		}

		c.index[course.ID] = len(c.courses)
		c.courses = append(c.courses, course.Clone())

		if course.Category != "" && !seen[course.Category] {
			seen[course.Category] = true
			c.categories = append(c.categories, course.Category)
		}
	}

	return c, nil
}

// FromPointers builds a catalog from stored rows, skipping nil entries.
func FromPointers(courses []*models.Course) (*Catalog, error) {
	out := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if course != nil {
			out = append(out, *course)
		}
	}
	return New(out)
}

// Len returns the number of courses.
func (c *Catalog) Len() int { return len(c.courses) }

// Courses returns the courses in catalog order.
func (c *Catalog) Courses() []models.Course {
	return slices.Clone(c.courses)
}

// Find resolves a course by id.
func (c *Catalog) Find(id string) (models.Course, error) {
	i, ok := c.index[id]
	if !ok {
		return models.Course{}, fmt.Errorf("%w: %s", shared.ErrCourseNotFound, id)
	}
	return c.courses[i].Clone(), nil
}

// Categories returns [AllCategory] followed by each distinct category in catalog order.
func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// Filter returns the courses in category, or every course for [AllCategory].
//
// Unknown categories yield an empty, non-nil slice.
func (c *Catalog) Filter(category string) []models.Course {
	if category == AllCategory {
		return c.Courses()
	}

	out := []models.Course{}
	for _, course := range c.courses {
		if course.Category == category {
			out = append(out, course)
		}
	}
	return out
}

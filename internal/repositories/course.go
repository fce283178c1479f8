package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/shared"
)

const courseColumns = `id, title, description, category, accent, cover, instructor, duration, level, students, rating, reviews`

// CourseRepository persists courses together with their skills and videos.
type CourseRepository struct {
	db *sql.DB
}

// NewCourseRepository creates a new CourseRepository with the given database connection
func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a course, its skills and its videos in one transaction.
func (r *CourseRepository) Create(course *models.Course) error {
	if err := course.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sequence, err := NextSequence(tx, "courses")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	query := `
		INSERT INTO courses (id, sequence, title, description, category, accent, cover, instructor, duration, level, students, rating, reviews)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.Exec(query,
		course.ID,
		sequence,
		course.Title,
		course.Description,
		course.Category,
		course.Accent,
		course.Cover,
		course.Instructor,
		course.Duration,
		course.Level,
		course.Students,
		course.Rating,
		course.Reviews,
	)
	if err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}

	for i, skill := range course.Skills {
		if _, err := tx.Exec(`INSERT INTO course_skills (course_id, position, skill) VALUES (?, ?, ?)`, course.ID, i, skill); err != nil {
			return fmt.Errorf("failed to insert skill: %w", err)
		}
	}

	for i, v := range course.Videos {
		_, err := tx.Exec(
			`INSERT INTO course_videos (course_id, position, video_id, title, url, poster, length) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			course.ID, i, v.ID, v.Title, v.URL, v.Poster, v.Length,
		)
		if err != nil {
			return fmt.Errorf("failed to insert video: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit course: %w", err)
	}
	return nil
}

// Get retrieves a course by ID.
func (r *CourseRepository) Get(id string) (*models.Course, error) {
	row := r.db.QueryRow(`SELECT `+courseColumns+` FROM courses WHERE id = ?`, id)

	course, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", shared.ErrCourseNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan course: %w", err)
	}

	if err := r.attach([]*models.Course{course}); err != nil {
		return nil, err
	}
	return course, nil
}

// List retrieves courses in sequence order.
//
// Supported criteria: "category" (string).
func (r *CourseRepository) List(criteria map[string]any) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`
	args := []any{}

	if category, ok := criteria["category"].(string); ok && category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY sequence ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	if err := r.attach(courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Delete removes a course; skills and videos cascade.
func (r *CourseRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrCourseNotFound, id)
	}
	return nil
}

// DeleteAll removes every course and returns how many were deleted.
func (r *CourseRepository) DeleteAll() (int, error) {
	result, err := r.db.Exec(`DELETE FROM courses`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete courses: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return int(rows), nil
}

// Count returns the number of stored courses.
func (r *CourseRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return n, nil
}

// attach loads skills and videos for courses in position order.
func (r *CourseRepository) attach(courses []*models.Course) error {
	for _, course := range courses {
		skills, err := r.db.Query(`SELECT skill FROM course_skills WHERE course_id = ? ORDER BY position`, course.ID)
		if err != nil {
			return fmt.Errorf("failed to query skills: %w", err)
		}
		for skills.Next() {
			var skill string
			if err := skills.Scan(&skill); err != nil {
				skills.Close()
				return fmt.Errorf("failed to scan skill: %w", err)
			}
			course.Skills = append(course.Skills, skill)
		}
		skills.Close()

		videos, err := r.db.Query(`SELECT video_id, title, url, poster, length FROM course_videos WHERE course_id = ? ORDER BY position`, course.ID)
		if err != nil {
			return fmt.Errorf("failed to query videos: %w", err)
		}
		for videos.Next() {
			var v models.Video
			if err := videos.Scan(&v.ID, &v.Title, &v.URL, &v.Poster, &v.Length); err != nil {
				videos.Close()
				return fmt.Errorf("failed to scan video: %w", err)
			}
			course.Videos = append(course.Videos, v)
		}
		videos.Close()
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCourse(s scanner) (*models.Course, error) {
	var c models.Course
	err := s.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Category,
		&c.Accent,
		&c.Cover,
		&c.Instructor,
		&c.Duration,
		&c.Level,
		&c.Students,
		&c.Rating,
		&c.Reviews,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

package repositories

import (
	"database/sql"
	"errors"
	"slices"
	"testing"

	"github.com/desertthunder/nova/internal/shared"
	tu "github.com/desertthunder/nova/internal/testing"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.OpenDatabase(shared.DatabaseConfig{Path: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNextSequence(t *testing.T) {
	db := setupTestDB(t)

	for want := 1; want <= 3; want++ {
		got, err := NextSequence(db, "courses")
		if err != nil {
			t.Fatalf("failed to get sequence: %v", err)
		}
		if got != want {
			t.Errorf("expected sequence %d, got %d", want, got)
		}
	}

	if _, err := NextSequence(db, "missing"); err == nil {
		t.Error("expected error for unknown sequence table")
	}
}

func TestCourseRepository(t *testing.T) {
	t.Run("Create And Get", func(t *testing.T) {
		repo := NewCourseRepository(setupTestDB(t))
		course := tu.FixtureCourses()[0]

		if err := repo.Create(&course); err != nil {
			t.Fatalf("failed to create course: %v", err)
		}

		got, err := repo.Get(course.ID)
		if err != nil {
			t.Fatalf("failed to get course: %v", err)
		}
		if got.Title != course.Title || got.Rating != course.Rating || got.Students != course.Students {
			t.Errorf("unexpected course %+v", got)
		}
		if !slices.Equal(got.Skills, course.Skills) {
			t.Errorf("expected skills %v, got %v", course.Skills, got.Skills)
		}
		if !slices.Equal(got.Videos, course.Videos) {
			t.Errorf("expected videos %v, got %v", course.Videos, got.Videos)
		}
	})

	t.Run("Get Missing", func(t *testing.T) {
		repo := NewCourseRepository(setupTestDB(t))

		if _, err := repo.Get("nope"); !errors.Is(err, shared.ErrCourseNotFound) {
			t.Errorf("expected ErrCourseNotFound, got %v", err)
		}
	})

	t.Run("Create Duplicate", func(t *testing.T) {
		repo := NewCourseRepository(setupTestDB(t))
		course := tu.FixtureCourses()[0]

		if err := repo.Create(&course); err != nil {
			t.Fatal(err)
		}
		if err := repo.Create(&course); err == nil {
			t.Error("expected duplicate id to fail")
		}
		if n, _ := repo.Count(); n != 1 {
			t.Errorf("failed insert should roll back, got %d courses", n)
		}
	})

	t.Run("Create Invalid", func(t *testing.T) {
		repo := NewCourseRepository(setupTestDB(t))
		course := tu.FixtureCourses()[0]
		course.Rating = 9

		if err := repo.Create(&course); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("List Preserves Order", func(t *testing.T) {
		repo := NewCourseRepository(setupTestDB(t))
		fixtures := tu.FixtureCourses()
		for i := range fixtures {
			if err := repo.Create(&fixtures[i]); err != nil {
				t.Fatal(err)
			}
		}

		courses, err := repo.List(nil)
		if err != nil {
			t.Fatalf("failed to list courses: %v", err)
		}
		if len(courses) != len(fixtures) {
			t.Fatalf("expected %d courses, got %d", len(fixtures), len(courses))
		}
		for i, c := range courses {
			if c.ID != fixtures[i].ID {
				t.Errorf("position %d: expected %s, got %s", i, fixtures[i].ID, c.ID)
			}
		}
		if len(courses[2].Videos) != 0 || len(courses[2].Skills) != 0 {
			t.Error("course without videos should load empty")
		}
	})

	t.Run("List By Category", func(t *testing.T) {
		repo := NewCourseRepository(setupTestDB(t))
		fixtures := tu.FixtureCourses()
		for i := range fixtures {
			repo.Create(&fixtures[i])
		}

		courses, err := repo.List(map[string]any{"category": "Career"})
		if err != nil {
			t.Fatal(err)
		}
		if len(courses) != 1 || courses[0].ID != "career-launch" {
			t.Errorf("unexpected courses %v", courses)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCourseRepository(db)
		course := tu.FixtureCourses()[0]
		repo.Create(&course)

		if err := repo.Delete(course.ID); err != nil {
			t.Fatalf("failed to delete: %v", err)
		}
		if err := repo.Delete(course.ID); !errors.Is(err, shared.ErrCourseNotFound) {
			t.Errorf("expected ErrCourseNotFound on second delete, got %v", err)
		}

		var videos int
		db.QueryRow(`SELECT COUNT(*) FROM course_videos`).Scan(&videos)
		if videos != 0 {
			t.Errorf("expected videos to cascade, %d left", videos)
		}
	})

	t.Run("DeleteAll", func(t *testing.T) {
		repo := NewCourseRepository(setupTestDB(t))
		fixtures := tu.FixtureCourses()
		for i := range fixtures {
			repo.Create(&fixtures[i])
		}

		n, err := repo.DeleteAll()
		if err != nil {
			t.Fatal(err)
		}
		if n != len(fixtures) {
			t.Errorf("expected %d deleted, got %d", len(fixtures), n)
		}
		if count, _ := repo.Count(); count != 0 {
			t.Errorf("expected empty table, got %d", count)
		}
	})
}

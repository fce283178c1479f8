package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/desertthunder/nova/internal/catalog"
	"github.com/desertthunder/nova/internal/formatter"
	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/playlist"
	"github.com/desertthunder/nova/internal/repositories"
	"github.com/desertthunder/nova/internal/shared"
	"github.com/desertthunder/nova/internal/tasks"
	"github.com/urfave/cli/v3"
)

// CatalogList prints the courses of one category.
func (r *Runner) CatalogList(ctx context.Context, cmd *cli.Command) error {
	cat, err := r.loadCatalog()
	if err != nil {
		return err
	}

	category := cmd.String("category")
	courses := cat.Filter(category)

	if cmd.Bool("json") {
		return r.writeJSON(courses, cmd.Bool("pretty"))
	}

	if len(courses) == 0 {
		return r.writePlainln("No courses in %q", category)
	}

	r.writePlainHeader(fmt.Sprintf("%s (%d courses)", category, len(courses)))
	for _, course := range courses {
		r.writePlainln("%-24s %s", course.ID, course.Title)
		r.writePlainln("%-24s %s · %s · ★ %s (%s reviews) · %s learners",
			"", course.Category, course.Level,
			formatter.FormatRating(course.Rating, 1), shared.FormatCount(course.Reviews), shared.FormatCount(course.Students))
	}
	return nil
}

// CatalogShow renders one course with its lesson list.
func (r *Runner) CatalogShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: course id", shared.ErrMissingArgument)
	}

	cat, err := r.loadCatalog()
	if err != nil {
		return err
	}

	course, err := cat.Find(id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(course, true)
	}

	md, err := formatter.ExportToMarkdown(&course, "")
	if err != nil {
		return err
	}
	r.writePlainln("%s", formatter.RenderMarkdown(string(md), 80))

	pl := playlist.ForCourse(course)
	return r.writePlainln("\n%s · %s", pl.LessonCount(), pl.TotalDuration())
}

// CatalogCategories prints the category filter values in catalog order.
func (r *Runner) CatalogCategories(ctx context.Context, cmd *cli.Command) error {
	cat, err := r.loadCatalog()
	if err != nil {
		return err
	}

	for _, category := range cat.Categories() {
		r.writePlainln("%-20s %d", category, len(cat.Filter(category)))
	}
	return nil
}

// CatalogExport writes one course to disk, or every course through the bulk exporter.
func (r *Runner) CatalogExport(ctx context.Context, cmd *cli.Command) error {
	cat, err := r.loadCatalog()
	if err != nil {
		return err
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	id := cmd.String("id")
	output := cmd.String("output")
	if id == "" {
		return r.bulkExport(ctx, cat.Courses(), format, output, cmd)
	}

	course, err := cat.Find(id)
	if err != nil {
		return err
	}

	r.logger.Info("exporting course", "id", course.ID, "format", format)

	var files []string
	switch format {
	case formatter.FormatCSV:
		res, err := formatter.WriteCSVExport(&course, output)
		if err != nil {
			return err
		}
		files = []string{res.LessonsFile, res.MetadataFile}
	case formatter.FormatMarkdown:
		cover := ""
		if cmd.Bool("covers") {
			cover = course.Cover
		}
		res, err := formatter.WriteMarkdownExport(&course, output, cover)
		if err != nil {
			return err
		}
		files = res.Files
	case formatter.FormatText:
		path, err := formatter.WriteTextExport(&course, output)
		if err != nil {
			return err
		}
		files = []string{path}
	default:
		path, err := formatter.WriteJSONExport(&course, output)
		if err != nil {
			return err
		}
		files = []string{path}
	}

	r.writePlainln("✓ Exported %s", course.Title)
	for _, f := range files {
		r.writePlainln("  %s", f)
	}
	return nil
}

func (r *Runner) bulkExport(ctx context.Context, courses []models.Course, format, output string, cmd *cli.Command) error {
	engine := tasks.NewCatalogEngine(nil)
	progress := make(chan tasks.ProgressUpdate, len(courses)+1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Info(update.Message, "phase", update.Phase, "step", update.Step, "total", update.Total)
		}
	}()

	result, err := engine.BulkExport(ctx, progress, courses, tasks.BulkExportOpts{
		Format:        format,
		OutputDir:     output,
		NumWorkers:    int(cmd.Int("workers")),
		IncludeCovers: cmd.Bool("covers"),
	})
	close(progress)
	<-done

	if result != nil {
		r.writePlainln("✓ Exported %d/%d courses to %s", result.SuccessfulExports, result.TotalCourses, result.OutputDirectory)
		if result.FailedExports > 0 {
			r.writePlainln("  %d failed (see %s)", result.FailedExports, filepath.Base(result.ManifestPath))
		}
	}
	return err
}

// CatalogImport stores a catalog in the SQLite database.
//
// The source is --file when given, otherwise the embedded catalog or the configured catalog file.
func (r *Runner) CatalogImport(ctx context.Context, cmd *cli.Command) error {
	var (
		source *catalog.Catalog
		err    error
	)
	switch {
	case cmd.String("file") != "":
		source, err = catalog.LoadFile(cmd.String("file"))
	case r.config.Catalog.Source == shared.CatalogFile:
		source, err = catalog.LoadFile(r.config.Catalog.Path)
	default:
		source, err = catalog.Default()
	}
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	db, err := shared.OpenDatabase(r.config.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	engine := tasks.NewCatalogEngine(repositories.NewCourseRepository(db))
	courses := source.Courses()
	progress := make(chan tasks.ProgressUpdate, len(courses)+1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for update := range progress {
			r.writePlainln("[%d/%d] %s", update.Step, update.Total, update.Message)
		}
	}()

	result, err := engine.Import(ctx, courses, tasks.ImportOpts{Replace: cmd.Bool("replace")}, progress)
	close(progress)
	<-done
	if err != nil {
		return err
	}

	r.writePlainln("✓ Imported %d of %d courses into %s", result.Imported, result.Total, r.config.Database.Path)
	if result.Removed > 0 {
		r.writePlainln("  removed %d stored courses", result.Removed)
	}
	if result.Skipped > 0 {
		r.writePlainln("  skipped %d already stored", result.Skipped)
	}
	for _, f := range result.Failed {
		r.writePlainln("  ✗ %s: %v", f.CourseID, f.Error)
	}
	return nil
}

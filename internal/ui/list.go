package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/nova/internal/formatter"
	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/playlist"
	"github.com/desertthunder/nova/internal/shared"
)

var (
	_ list.Item = courseItem{}
	_ list.Item = lessonItem{}
)

// courseItem wraps [models.Course] to implement [list.Item].
type courseItem struct {
	course models.Course
}

func (i courseItem) FilterValue() string { return i.course.Title }
func (i courseItem) Title() string       { return i.course.Title }
func (i courseItem) Description() string {
	desc := fmt.Sprintf("★ %s (%s)", formatter.FormatRating(i.course.Rating, 1), shared.FormatCount(i.course.Reviews))
	if i.course.Level != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.course.Level)
	}
	if summary := i.course.SkillSummary(); summary != "" {
		desc = fmt.Sprintf("%s • %s", desc, summary)
	}
	return desc
}

// lessonItem wraps one playlist entry to implement [list.Item].
type lessonItem struct {
	index  int
	video  models.Video
	status string
}

func (i lessonItem) FilterValue() string { return i.video.Title }
func (i lessonItem) Title() string {
	return fmt.Sprintf("%s. %s", playlist.LessonNumber(i.index), i.video.Title)
}
func (i lessonItem) Description() string {
	if i.video.Length == "" {
		return i.status
	}
	return fmt.Sprintf("%s • %s", i.video.Length, i.status)
}

func courseItems(courses []models.Course) []list.Item {
	items := make([]list.Item, len(courses))
	for i, c := range courses {
		items[i] = courseItem{course: c}
	}
	return items
}

func lessonItems(p *playlist.Playlist) []list.Item {
	videos := p.Videos()
	items := make([]list.Item, len(videos))
	for i, v := range videos {
		items[i] = lessonItem{index: i, video: v, status: p.Status(i)}
	}
	return items
}

func newList(items []list.Item, title string, width, height int) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()
	return l
}

package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/playlist"
	"github.com/desertthunder/nova/internal/shared"
)

// openCourse routes to course and scopes the shared playlist to it. Playback never starts on its own.
func (m *Model) openCourse(course models.Course) {
	if course.ID != m.playlist.Key() {
		m.stopPlayback()
	}
	m.route = Route{Kind: CourseRoute, CourseID: course.ID}
	m.course = course
	m.status = ""
	m.playlist.Reset(course.ID, course.Title, course.Videos)
	m.lessons = newList(lessonItems(m.playlist), "Lessons", m.listWidth(), m.listHeight())
	m.lessons.Select(m.playlist.Index())
}

func (m *Model) handleCourseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.stopPlayback()
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.navigate(Route{Kind: LandingRoute})
		return m, nil
	case key.Matches(msg, m.keys.chat):
		return m, openChat(m.course.ID)
	case key.Matches(msg, m.keys.autoplay):
		if m.playlist.ToggleAutoplay() {
			m.status = "Autoplay on"
		} else {
			m.status = "Autoplay off"
		}
		return m, nil
	case key.Matches(msg, m.keys.stop):
		m.stopPlayback()
		m.refreshLessons()
		return m, nil
	case key.Matches(msg, m.keys.browser):
		if video, ok := m.playlist.Current(); ok {
			return m, m.openInBrowser(video.URL)
		}
		return m, nil
	case key.Matches(msg, m.keys.play):
		if m.playlist.Empty() {
			return m, nil
		}
		req, err := m.playlist.Select(m.lessons.Index())
		if err != nil {
			m.logger.Debug("lesson selection rejected", "error", err)
			return m, nil
		}
		return m, m.startPlayback(req)
	}

	var cmd tea.Cmd
	m.lessons, cmd = m.lessons.Update(msg)
	return m, cmd
}

func (m *Model) handleNotFoundKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.open):
		m.navigate(Route{Kind: LandingRoute})
	}
	return m, nil
}

// startPlayback stops the running session and launches req.
func (m *Model) startPlayback(req playlist.Request) tea.Cmd {
	m.stopPlayback()
	m.playing = true
	m.refreshLessons()

	player, ctx := m.player, m.ctx
	return func() tea.Msg {
		session, err := player.Play(ctx, req.Video)
		return playbackStartedMsg{req: req, session: session, err: err}
	}
}

func (m *Model) stopPlayback() {
	m.playing = false
	if m.session == nil {
		return
	}
	if err := m.session.Stop(); err != nil {
		m.logger.Debug("failed to stop playback", "error", err)
	}
	m.session = nil
}

// current reports whether req belongs to the playlist's latest selection.
func (m *Model) current(req playlist.Request) bool {
	return req.Key == m.playlist.Key() && req.Generation == m.playlist.Generation()
}

func (m *Model) handlePlaybackStarted(msg playbackStartedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Debug("playback unavailable", "video", msg.req.Video.Title, "error", msg.err)
		if m.current(msg.req) {
			m.playing = false
			if errors.Is(msg.err, shared.ErrPlayerUnavailable) {
				m.status = "No media player available · press o to open in a browser"
			}
		}
		return m, nil
	}

	if !m.current(msg.req) {
		_ = msg.session.Stop()
		return m, nil
	}

	m.session = msg.session
	m.status = "Now playing: " + msg.req.Video.Title

	session, req := msg.session, msg.req
	return m, func() tea.Msg {
		return playbackEndedMsg{req: req, err: session.Wait()}
	}
}

// handlePlaybackEnded advances on a natural end when autoplay is on. Ends of superseded
// sessions are ignored.
func (m *Model) handlePlaybackEnded(msg playbackEndedMsg) (tea.Model, tea.Cmd) {
	if !m.current(msg.req) {
		return m, nil
	}

	m.session = nil
	m.playing = false

	if msg.err != nil {
		m.logger.Debug("playback stopped", "video", msg.req.Video.Title, "error", msg.err)
		m.refreshLessons()
		return m, nil
	}

	next, ok := m.playlist.Finished(msg.req)
	if !ok {
		m.status = ""
		m.refreshLessons()
		return m, nil
	}
	m.lessons.Select(next.Index)
	return m, m.startPlayback(next)
}

func (m *Model) openInBrowser(url string) tea.Cmd {
	open := m.openURL
	return func() tea.Msg {
		return openedMsg{url: url, err: open(url)}
	}
}

func (m *Model) refreshLessons() {
	m.lessons.SetItems(lessonItems(m.playlist))
}

func (m *Model) renderCourse() string {
	c := m.course

	header := joinLines(
		styles.title.Render(c.Title),
		c.Description,
		fmt.Sprintf("Mentor: %s  •  Duration: %s  •  Level: %s  •  Learners: %s",
			valueOr(c.Instructor), valueOr(c.Duration), valueOr(c.Level), shared.FormatCount(c.Students)),
	)
	header = accent(c.Accent).Width(max(20, m.mainWidth()-6)).Render(header)

	var lessons string
	if !m.playlist.Empty() {
		autoplay := "off"
		if m.playlist.Autoplay() {
			autoplay = "on"
		}
		summary := m.playlist.LessonCount()
		if total := m.playlist.TotalDuration(); total != "" {
			summary = fmt.Sprintf("%s  •  %s", summary, total)
		}
		summary = fmt.Sprintf("%s  •  autoplay %s", summary, autoplay)
		if m.playing {
			summary += "  •  ▶"
		}
		lessons = joinLines(styles.muted.Render(summary), m.lessons.View())
	}

	launcher := lipgloss.JoinHorizontal(lipgloss.Center, LoadMascot(), "  ", styles.help.Render("press c to ask Nova"))

	return joinLines(
		header,
		lessons,
		launcher,
		m.helpView(m.keys.play, m.keys.autoplay, m.keys.stop, m.keys.browser, m.keys.chat, m.keys.back, m.keys.quit),
	)
}

func (m *Model) renderNotFound() string {
	return joinLines(
		styles.err.Render("Course unavailable"),
		fmt.Sprintf("We could not find a course with id %q.", m.route.CourseID),
		m.helpView(m.keys.back, m.keys.quit),
	)
}

func valueOr(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

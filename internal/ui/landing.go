package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/nova/internal/chat"
	"github.com/desertthunder/nova/internal/formatter"
	"github.com/desertthunder/nova/internal/shared"
)

// OriginLanding tags chat sessions opened from the catalog.
const OriginLanding = "landing"

func (m *Model) handleLandingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.next):
		m.cycleCategory(1)
		return m, nil
	case key.Matches(msg, m.keys.prev):
		m.cycleCategory(-1)
		return m, nil
	case key.Matches(msg, m.keys.chat):
		return m, openChat(OriginLanding)
	case key.Matches(msg, m.keys.open):
		if item, ok := m.courses.SelectedItem().(courseItem); ok {
			m.openCourse(item.course)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.courses, cmd = m.courses.Update(msg)
	m.featureSelected()
	return m, cmd
}

// featureSelected makes the highlighted list entry the featured course.
func (m *Model) featureSelected() {
	if item, ok := m.courses.SelectedItem().(courseItem); ok {
		m.landing.Feature(item.course.ID)
	}
}

func (m *Model) cycleCategory(delta int) {
	m.landing.CycleCategory(delta)
	m.courses.SetItems(courseItems(m.landing.Visible()))
	if i := m.landing.FeaturedIndex(); i >= 0 {
		m.courses.Select(i)
	}
}

// openChat emits the request the shell answers by showing the chat widget.
func openChat(origin string) tea.Cmd {
	return func() tea.Msg { return chat.OpenRequest{Origin: origin} }
}

func (m *Model) renderLanding() string {
	title := styles.title.Render("Nova · Course Catalog")

	var tabs []string
	for _, c := range m.landing.Categories() {
		if c == m.landing.Category() {
			tabs = append(tabs, styles.active.Render(c))
		} else {
			tabs = append(tabs, styles.tab.Render(c))
		}
	}

	body := m.courses.View()
	if len(m.landing.Visible()) == 0 {
		body = styles.muted.Render("No courses in this category yet.")
	}

	return joinLines(
		title,
		m.renderHero(),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		body,
		m.helpView(m.keys.up, m.keys.down, m.keys.open, m.keys.next, m.keys.chat, m.keys.quit),
	)
}

func (m *Model) renderHero() string {
	hero := m.landing.Hero()
	if hero == nil {
		return ""
	}

	stats := fmt.Sprintf("★ %s  •  %s learners  •  %s",
		formatter.FormatRating(hero.Rating, 2),
		shared.FormatCount(hero.Students),
		hero.Duration,
	)
	content := joinLines(
		styles.muted.Render(hero.Category),
		lipgloss.NewStyle().Bold(true).Render(hero.Title),
		hero.Description,
		stats,
	)
	return accent(hero.Accent).Width(max(20, m.mainWidth()-6)).Render(content)
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/nova/internal/chat"
	"github.com/desertthunder/nova/internal/formatter"
	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/shared"
)

var errNoAsker = fmt.Errorf("%w: no answering service configured", shared.ErrServiceUnavailable)

// showChat opens the widget. Opening an open widget only updates its origin.
func (m *Model) showChat(origin string) tea.Cmd {
	wasOpen := m.chat.Visible()
	m.chat.Open(origin)
	m.input.Focus()
	m.resizeLists()
	if !wasOpen {
		m.refreshChat()
		m.viewport.GotoBottom()
		m.scroll.JumpToLatest()
	}
	return textinput.Blink
}

func (m *Model) hideChat() {
	m.chat.Close()
	m.input.Blur()
	m.resizeLists()
}

// resizeLists gives the lists the width left over by the chat panel.
func (m *Model) resizeLists() {
	m.courses.SetSize(m.listWidth(), m.listHeight())
	m.lessons.SetSize(m.listWidth(), m.listHeight())
}

func (m *Model) handleChatKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.close):
		m.hideChat()
		return m, nil
	case key.Matches(msg, m.keys.send):
		return m, m.submit()
	case key.Matches(msg, m.keys.copy):
		return m, m.copyAnswer()
	case key.Matches(msg, m.keys.latest):
		m.viewport.GotoBottom()
		m.scroll.JumpToLatest()
		return m, nil
	case key.Matches(msg, m.keys.scroll):
		return m.scrollChat(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.chat.SetInput(m.input.Value())
	return m, cmd
}

func (m *Model) scrollChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.scroll.Scrolled(m.position())
	return m, cmd
}

// submit sends the typed question. Blank input and a pending request are no-ops.
func (m *Model) submit() tea.Cmd {
	m.chat.SetInput(m.input.Value())

	req, ok := m.chat.Submit()
	if !ok {
		return nil
	}
	m.input.Reset()
	m.sources = nil
	m.contentChanged()

	if m.asker == nil {
		return func() tea.Msg { return answerMsg{err: errNoAsker} }
	}

	asker, ctx, logger := m.asker, m.ctx, m.logger
	ask := func() tea.Msg {
		start := time.Now()
		answer, err := asker.Ask(ctx, req.Query)
		logger.Debug("answer received", "duration", time.Since(start), "error", err)
		return answerMsg{answer: answer, err: err}
	}
	return tea.Batch(ask, m.spin.Tick)
}

func (m *Model) handleAnswer(msg answerMsg) (tea.Model, tea.Cmd) {
	var text string
	if msg.answer != nil {
		text = msg.answer.Text
	}
	if msg.err != nil {
		m.logger.Warn("chat request failed", "error", msg.err)
	}

	if _, ok := m.chat.Resolve(text, msg.err); !ok {
		return m, nil
	}
	if msg.err == nil && msg.answer != nil {
		m.sources = msg.answer.Sources
	}
	m.contentChanged()
	return m, nil
}

// contentChanged re-renders the transcript and follows it only when the reader was already
// near the bottom; otherwise the "scroll to latest" affordance appears.
func (m *Model) contentChanged() {
	before := m.position()
	m.refreshChat()
	if m.scroll.ContentChanged(before) {
		m.viewport.GotoBottom()
	}
}

func (m *Model) position() chat.Position {
	return chat.Position{
		Total:  m.viewport.TotalLineCount(),
		Offset: m.viewport.YOffset,
		Height: m.viewport.Height,
	}
}

func (m *Model) copyAnswer() tea.Cmd {
	answer, ok := m.chat.LastAnswer()
	if !ok {
		return nil
	}
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(answer)}
	}
}

// refreshChat lays out the transcript into the viewport.
func (m *Model) refreshChat() {
	width := m.viewport.Width
	var b strings.Builder
	for i, msg := range m.chat.Messages() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderMessage(msg, width))
	}
	if len(m.sources) > 0 {
		refs := make([]string, len(m.sources))
		for i, s := range m.sources {
			refs[i] = s.String()
		}
		b.WriteString("\n")
		b.WriteString(styles.muted.Width(width).Render("Sources: " + strings.Join(refs, ", ")))
	}
	m.viewport.SetContent(b.String())
}

func renderMessage(msg models.ChatMessage, width int) string {
	if msg.Author == models.AuthorUser {
		return styles.user.Render("You") + "\n" + styles.muted.Width(width).Render(msg.Text)
	}
	return styles.ok.Render("Nova") + "\n" + strings.Trim(formatter.RenderMarkdown(msg.Text, width-2), "\n")
}

func (m *Model) renderChat() string {
	header := fmt.Sprintf("%s\n%s", styles.muted.Render(chat.Greeting(time.Now())), styles.title.UnsetMarginBottom().Render("Nova assistant"))

	var status string
	switch {
	case m.chat.Waiting():
		status = m.spin.View() + " Nova is thinking..."
	case m.scroll.ShowLatest():
		status = styles.warn.Render("↓ new messages · press end to scroll to latest")
	}

	parts := []string{header, m.viewport.View()}
	if status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, m.input.View(), m.helpView(m.keys.send, m.keys.latest, m.keys.copy, m.keys.close))

	return styles.panel.Width(chatWidth - 2).Render(strings.Join(parts, "\n"))
}

package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/nova/internal/catalog"
	"github.com/desertthunder/nova/internal/chat"
	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/playlist"
	"github.com/desertthunder/nova/internal/services"
	"github.com/desertthunder/nova/internal/shared"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	chatWidth     = 46
)

// Options wires the model's collaborators. Zero values fall back to working defaults.
type Options struct {
	Asker           services.Asker
	Player          playlist.Player
	Logger          *log.Logger
	Route           string // Initial path, e.g. "/courses/ml-foundations"
	Greeting        string
	ScrollThreshold int  // Negative means [chat.DefaultScrollThreshold]
	Autoplay        bool // Initial autoplay setting for course playlists
	CopyText        func(string) error
	OpenURL         func(string) error
}

// Model is the application shell. It owns the route, the landing state, the single course
// playlist and the single chat widget shared by every view.
type Model struct {
	ctx      context.Context
	catalog  *catalog.Catalog
	asker    services.Asker
	player   playlist.Player
	logger   *log.Logger
	copyText func(string) error
	openURL  func(string) error

	route   Route
	landing *catalog.Landing
	courses list.Model

	course   models.Course
	playlist *playlist.Playlist
	lessons  list.Model
	session  playlist.Session
	playing  bool

	chat     *chat.Widget
	scroll   *chat.Scroll
	sources  []models.Source
	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model

	status string
	width  int
	height int
	help   help.Model
	keys   keyMap
}

// NewModel creates the shell positioned on opts.Route.
func NewModel(ctx context.Context, cat *catalog.Catalog, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == nil {
		opts.Player = playlist.NopPlayer{}
	}
	if opts.CopyText == nil {
		opts.CopyText = clipboard.WriteAll
	}
	if opts.OpenURL == nil {
		opts.OpenURL = shared.OpenURL
	}

	input := textinput.New()
	input.Placeholder = "Ask about a course..."
	input.Prompt = "> "
	input.CharLimit = 500

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.user

	p := playlist.New("", "", nil)
	p.SetAutoplay(opts.Autoplay)

	m := &Model{
		ctx:      ctx,
		catalog:  cat,
		asker:    opts.Asker,
		player:   opts.Player,
		logger:   shared.WithLogger(opts.Logger, "component", "ui"),
		copyText: opts.CopyText,
		openURL:  opts.OpenURL,
		landing:  catalog.NewLanding(cat),
		playlist: p,
		chat:     chat.NewWidget(opts.Greeting),
		scroll:   chat.NewScroll(opts.ScrollThreshold),
		viewport: viewport.New(chatWidth-4, 10),
		input:    input,
		spin:     s,
		width:    defaultWidth,
		height:   defaultHeight,
		help:     help.New(),
		keys:     newKeyMap(),
	}

	m.courses = newList(courseItems(m.landing.Visible()), "Courses", m.listWidth(), m.listHeight())
	m.lessons = newList(nil, "Lessons", m.listWidth(), m.listHeight())
	m.refreshChat()
	m.navigate(ParseRoute(opts.Route))
	return m
}

func (m *Model) Route() Route                 { return m.route }
func (m *Model) Landing() *catalog.Landing    { return m.landing }
func (m *Model) Course() models.Course        { return m.course }
func (m *Model) Playlist() *playlist.Playlist { return m.playlist }
func (m *Model) Chat() *chat.Widget           { return m.chat }
func (m *Model) Scroll() *chat.Scroll         { return m.scroll }
func (m *Model) Status() string               { return m.status }

// Init implements [tea.Model].
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.forceQ) {
			m.stopPlayback()
			return m, tea.Quit
		}
		if m.chat.Visible() {
			return m.handleChatKeys(msg)
		}
		switch m.route.Kind {
		case CourseRoute:
			return m.handleCourseKeys(msg)
		case NotFoundRoute:
			return m.handleNotFoundKeys(msg)
		default:
			return m.handleLandingKeys(msg)
		}

	case tea.MouseMsg:
		if m.chat.Visible() {
			return m.scrollChat(msg)
		}
		return m, nil

	case chat.OpenRequest:
		return m, m.showChat(msg.Origin)

	case answerMsg:
		return m.handleAnswer(msg)

	case spinner.TickMsg:
		if !m.chat.Waiting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case playbackStartedMsg:
		return m.handlePlaybackStarted(msg)

	case playbackEndedMsg:
		return m.handlePlaybackEnded(msg)

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("failed to copy answer", "error", msg.err)
			m.status = "Could not copy to clipboard"
		} else {
			m.status = "Copied answer to clipboard"
		}
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.logger.Debug("failed to open url", "url", msg.url, "error", msg.err)
			m.status = "Could not open " + msg.url
		}
		return m, nil
	}

	return m, nil
}

// View renders the active route with the chat panel beside it when open.
func (m *Model) View() string {
	var main string
	switch m.route.Kind {
	case CourseRoute:
		main = m.renderCourse()
	case NotFoundRoute:
		main = m.renderNotFound()
	default:
		main = m.renderLanding()
	}

	if m.status != "" {
		main = fmt.Sprintf("%s\n%s", main, styles.muted.Render(m.status))
	}
	if !m.chat.Visible() {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, m.renderChat())
}

// navigate switches views. Course routes resolve against the catalog and fall back to the
// not-found view when the id is unknown.
func (m *Model) navigate(r Route) {
	if r.Kind != CourseRoute {
		m.stopPlayback()
		m.route = Route{Kind: LandingRoute}
		return
	}

	course, err := m.catalog.Find(r.CourseID)
	if err != nil {
		m.logger.Debug("course not found", "id", r.CourseID)
		m.stopPlayback()
		m.route = Route{Kind: NotFoundRoute, CourseID: r.CourseID}
		return
	}
	m.openCourse(course)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.resizeLists()
	m.viewport.Width = chatWidth - 4
	m.viewport.Height = max(3, height-12)
	m.input.Width = chatWidth - 8
	m.refreshChat()
}

func (m *Model) mainWidth() int {
	if m.chat.Visible() {
		return max(20, m.width-chatWidth)
	}
	return m.width
}

func (m *Model) listWidth() int  { return max(20, m.mainWidth()-4) }
func (m *Model) listHeight() int { return max(5, m.height-14) }

func (m *Model) helpView(bindings ...key.Binding) string {
	return m.help.ShortHelpView(bindings)
}

func joinLines(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}

// Package web serves the course catalog as a server-rendered HTML site mirroring the TUI.
//
// # Routes
//
//	GET  /                  → landing page (?category=, ?featured=)
//	GET  /courses/{id}      → course page with playlist (?v=, ?autoplay=); 404 "Course unavailable"
//	POST /ask               → forwards {"query": ...} to the answering service (rate limited)
//	GET  /api/health        → liveness plus answering service reachability
//	GET  /api/courses       → catalog as JSON (?category=)
//	GET  /api/courses/{id}  → one course as JSON
//	GET  /static/           → stylesheet and the chat widget script
//	*                       → 302 to /
//
// Pages are html/template documents sharing one layout, which also carries the chat widget and
// loads the 3D viewer script once per page. The browser chat widget talks to POST /ask on this
// server so it never needs direct access to the answering service.
//
// The [Site] is read-only after construction and safe for concurrent requests.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/nova/internal/catalog"
	"github.com/desertthunder/nova/internal/chat"
	"github.com/desertthunder/nova/internal/formatter"
	"github.com/desertthunder/nova/internal/server"
	"github.com/desertthunder/nova/internal/services"
	"github.com/desertthunder/nova/internal/shared"
)

const (
	ModelViewerScript = "https://unpkg.com/@google/model-viewer/dist/model-viewer.min.js"
	MascotModel       = "https://modelviewer.dev/shared-assets/models/Astronaut.glb"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options tunes the site.
type Options struct {
	Greeting        string           // First bot message; defaults to [chat.DefaultGreeting]
	ScrollThreshold int              // Chat auto-follow distance in lines; negative means the default
	AskRateLimit    float64          // Requests per second per client on POST /ask; 0 disables limiting
	AskBurst        int              // Burst allowance on POST /ask
	Now             func() time.Time // Clock for the chat header greeting
}

// Site renders the catalog and forwards chat questions.
type Site struct {
	catalog *catalog.Catalog
	ask     *services.AskService
	logger  *log.Logger
	opts    Options
	pages   map[string]*template.Template
}

// NewSite parses the page templates and returns a site over cat.
//
// ask may be nil, in which case POST /ask answers 503.
func NewSite(cat *catalog.Catalog, ask *services.AskService, logger *log.Logger, opts Options) (*Site, error) {
	if cat == nil {
		return nil, fmt.Errorf("%w: catalog", shared.ErrMissingArgument)
	}
	if opts.Greeting == "" {
		opts.Greeting = chat.DefaultGreeting
	}
	if opts.ScrollThreshold < 0 {
		opts.ScrollThreshold = chat.DefaultScrollThreshold
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	return &Site{
		catalog: cat,
		ask:     ask,
		logger:  shared.WithLogger(logger, "component", "web"),
		opts:    opts,
		pages:   pages,
	}, nil
}

var funcs = template.FuncMap{
	"count":  shared.FormatCount,
	"rating": formatter.FormatRating,
}

func parsePages() (map[string]*template.Template, error) {
	pages := map[string]*template.Template{}
	for _, name := range []string{pageLanding, pageCourse, pageNotFound} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

// Register adds every route to r.
func (s *Site) Register(r server.Router) {
	static, _ := fs.Sub(staticFS, "static")

	r.Handle(http.MethodGet, "/{$}", http.HandlerFunc(s.handleLanding))
	r.Handle(http.MethodGet, "/courses/{id}", http.HandlerFunc(s.handleCourse))
	r.Handle(http.MethodGet, "/static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	r.Handle(http.MethodPost, "/ask", server.Chain(http.HandlerFunc(s.handleAsk), server.RateLimit(s.opts.AskRateLimit, s.opts.AskBurst)))
	r.Handle(http.MethodGet, server.HealthPath, http.HandlerFunc(s.handleHealth))
	r.Handle(http.MethodGet, "/api/courses", http.HandlerFunc(s.handleCourses))
	r.Handle(http.MethodGet, "/api/courses/{id}", http.HandlerFunc(s.handleCourseJSON))
	r.Handle("", "/", http.HandlerFunc(s.handleFallback))
}

// Handler returns the site behind the default middleware stack.
func (s *Site) Handler() http.Handler {
	r := server.NewBasicRouter()
	r.Use(server.Defaults()...)
	r.Use(server.Logging(s.logger), server.SecurityHeaders)
	s.Register(r)
	return r
}

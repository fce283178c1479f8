package web

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/desertthunder/nova/internal/catalog"
	"github.com/desertthunder/nova/internal/chat"
	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/playlist"
	"github.com/desertthunder/nova/internal/shared"
)

const (
	pageLanding  = "landing"
	pageCourse   = "course"
	pageNotFound = "notfound"
)

// page carries what the layout needs on every document.
type page struct {
	ModelViewerScript string
	Chat              chatView
}

type chatView struct {
	Greeting  string
	Threshold int
	Fallback  string
	ErrorText string
	AskPath   string
	Messages  []models.ChatMessage
}

type categoryLink struct {
	Name   string
	URL    string
	Active bool
}

type courseCard struct {
	Course     models.Course
	FeatureURL string
	Featured   bool
}

type landingPage struct {
	page
	Hero       *models.Course
	Categories []categoryLink
	Cards      []courseCard
}

type lessonView struct {
	Number  string
	Title   string
	Length  string
	Status  string
	URL     string
	Current bool
}

type coursePage struct {
	page
	Course        models.Course
	Lessons       []lessonView
	Current       *models.Video
	Play          bool
	Autoplay      bool
	NextURL       string
	LessonCount   string
	TotalDuration string
	MascotModel   string
}

// newPage seeds the layout with a fresh chat transcript; the browser owns it from there.
func (s *Site) newPage() page {
	w := chat.NewWidget(s.opts.Greeting)
	return page{
		ModelViewerScript: ModelViewerScript,
		Chat: chatView{
			Greeting:  chat.Greeting(s.opts.Now()),
			Threshold: s.opts.ScrollThreshold,
			Fallback:  chat.FallbackAnswer,
			ErrorText: chat.ErrorAnswer,
			AskPath:   "/ask",
			Messages:  w.Messages(),
		},
	}
}

func (s *Site) handleLanding(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	landing := catalog.NewLanding(s.catalog)
	if category := q.Get("category"); category != "" {
		landing.SetCategory(category)
	}
	if id := q.Get("featured"); id != "" {
		landing.Feature(id)
	}

	data := landingPage{page: s.newPage(), Hero: landing.Hero()}
	for _, name := range landing.Categories() {
		data.Categories = append(data.Categories, categoryLink{
			Name:   name,
			URL:    landingURL(name, ""),
			Active: name == landing.Category(),
		})
	}

	featured := landing.FeaturedIndex()
	for i, course := range landing.Visible() {
		data.Cards = append(data.Cards, courseCard{
			Course:     course,
			FeatureURL: landingURL(landing.Category(), course.ID),
			Featured:   i == featured,
		})
	}

	s.render(w, http.StatusOK, pageLanding, data)
}

func (s *Site) handleCourse(w http.ResponseWriter, r *http.Request) {
	course, err := s.catalog.Find(r.PathValue("id"))
	if err != nil {
		if !errors.Is(err, shared.ErrCourseNotFound) {
			s.logger.Error("failed to resolve course", "error", err)
		}
		s.render(w, http.StatusNotFound, pageNotFound, struct{ page }{s.newPage()})
		return
	}

	q := r.URL.Query()
	p := playlist.ForCourse(course)
	p.SetAutoplay(q.Get("autoplay") != "0")

	play := false
	if v := q.Get("v"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			_, err = p.Select(i)
			play = err == nil
		}
	}

	data := coursePage{
		page:          s.newPage(),
		Course:        course,
		Play:          play,
		Autoplay:      p.Autoplay(),
		LessonCount:   p.LessonCount(),
		TotalDuration: p.TotalDuration(),
		MascotModel:   MascotModel,
	}

	for i, video := range p.Videos() {
		data.Lessons = append(data.Lessons, lessonView{
			Number:  playlist.LessonNumber(i),
			Title:   video.Title,
			Length:  video.Length,
			Status:  p.Status(i),
			URL:     lessonURL(course.ID, i, p.Autoplay()),
			Current: i == p.Index(),
		})
	}

	if current, ok := p.Current(); ok {
		data.Current = &current
		// The browser decides whether to follow; always offer the next lesson.
		p.SetAutoplay(true)
		if next, ok := p.Ended(); ok {
			data.NextURL = lessonURL(course.ID, next.Index, true)
		}
	}

	s.render(w, http.StatusOK, pageCourse, data)
}

// handleFallback sends every unmatched path back to the catalog.
func (s *Site) handleFallback(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Site) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.Error("failed to render page", "page", name, "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func landingURL(category, featured string) string {
	q := url.Values{}
	if category != "" && category != catalog.AllCategory {
		q.Set("category", category)
	}
	if featured != "" {
		q.Set("featured", featured)
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

func lessonURL(courseID string, index int, autoplay bool) string {
	q := url.Values{}
	q.Set("v", strconv.Itoa(index))
	if !autoplay {
		q.Set("autoplay", "0")
	}
	return "/courses/" + url.PathEscape(courseID) + "?" + q.Encode()
}

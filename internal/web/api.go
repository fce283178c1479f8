package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/desertthunder/nova/internal/chat"
	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/server"
	"github.com/desertthunder/nova/internal/shared"
	"github.com/goccy/go-json"
)

const (
	maxQueryBytes = 16 << 10
	healthTimeout = 2 * time.Second
)

// healthResponse is the body of GET /api/health.
type healthResponse struct {
	Status        string `json:"status"`
	Courses       int    `json:"courses"`
	AnswerService string `json:"answer_service"`
}

// handleAsk forwards a question to the answering service and relays its reply unchanged.
func (s *Site) handleAsk(w http.ResponseWriter, r *http.Request) {
	if s.ask == nil {
		server.WriteError(w, http.StatusServiceUnavailable, chat.ErrorAnswer)
		return
	}

	var q models.Question
	if err := json.NewDecoder(io.LimitReader(r.Body, maxQueryBytes)).Decode(&q); err != nil {
		server.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	q.Query = strings.TrimSpace(q.Query)
	if q.Query == "" {
		server.WriteError(w, http.StatusBadRequest, "query is required")
		return
	}

	body, err := json.Marshal(q)
	if err != nil {
		server.WriteError(w, http.StatusInternalServerError, "failed to encode question")
		return
	}

	resp, err := s.ask.API().Post(r.Context(), s.ask.Path(), body)
	if err != nil {
		s.logger.Warn("answering service request failed", "error", err)
		server.WriteError(w, http.StatusBadGateway, chat.ErrorAnswer)
		return
	}

	contentType := resp.Headers.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
}

func (s *Site) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := healthResponse{Status: "ok", Courses: s.catalog.Len(), AnswerService: "unconfigured"}

	if s.ask != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		health.AnswerService = "reachable"
		if err := s.ask.API().Ping(ctx); err != nil {
			s.logger.Debug("answering service unreachable", "error", err)
			health.AnswerService = "unreachable"
		}
	}

	server.WriteJSON(w, http.StatusOK, health)
}

func (s *Site) handleCourses(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		server.WriteJSON(w, http.StatusOK, s.catalog.Courses())
		return
	}
	server.WriteJSON(w, http.StatusOK, s.catalog.Filter(category))
}

func (s *Site) handleCourseJSON(w http.ResponseWriter, r *http.Request) {
	course, err := s.catalog.Find(r.PathValue("id"))
	if errors.Is(err, shared.ErrCourseNotFound) {
		server.WriteError(w, http.StatusNotFound, "course not found")
		return
	}
	if err != nil {
		server.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	server.WriteJSON(w, http.StatusOK, course)
}

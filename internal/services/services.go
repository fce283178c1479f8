// package services defines interface Asker for the remote answering service
package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/shared"
	"github.com/goccy/go-json"
)

const DefaultAskPath = "/ask"

// Asker sends a question to the answering service.
type Asker interface {
	// Ask posts query and returns the decoded answer.
	// Non-2xx responses and undecodable bodies return an error wrapping [shared.ErrAPIRequest].
	Ask(ctx context.Context, query string) (*models.Answer, error)
}

// AskService implements [Asker] over HTTP.
type AskService struct {
	api  *APIService
	path string
}

// NewAskService creates a client for POST {baseURL}{path}.
func NewAskService(baseURL, path string, client *http.Client) *AskService {
	if path == "" {
		path = DefaultAskPath
	}
	return &AskService{api: NewAPIService(baseURL, client), path: path}
}

// NewAskServiceFromConfig builds an [AskService] from the chat settings.
func NewAskServiceFromConfig(cfg shared.ChatConfig) *AskService {
	return NewAskService(cfg.Endpoint, cfg.Path, &http.Client{Timeout: cfg.Timeout()})
}

// API exposes the underlying raw client.
func (s *AskService) API() *APIService { return s.api }

// Path returns the ask path.
func (s *AskService) Path() string { return s.path }

// Ask posts {"query": query} and decodes {"answer": ..., "sources": [...]}.
//
// A missing or non-string answer is not an error; callers decide on the fallback text.
// Sources are best effort: entries of any other shape are dropped.
func (s *AskService) Ask(ctx context.Context, query string) (*models.Answer, error) {
	body, err := json.Marshal(models.Question{Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to encode question: %w", err)
	}

	resp, err := s.api.Post(ctx, s.path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var reply struct {
		Answer  json.RawMessage `json:"answer"`
		Sources json.RawMessage `json:"sources"`
	}
	if err := json.Unmarshal(resp.Body, &reply); err != nil {
		return nil, fmt.Errorf("%w: failed to decode answer: %v", shared.ErrAPIRequest, err)
	}

	answer := &models.Answer{Sources: decodeSources(reply.Sources)}
	// A non-string answer counts as missing.
	_ = json.Unmarshal(reply.Answer, &answer.Text)
	return answer, nil
}

// decodeSources keeps every entry that decodes as a [models.Source] and drops the rest.
func decodeSources(raw json.RawMessage) []models.Source {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	var sources []models.Source
	for _, item := range items {
		var src models.Source
		if err := json.Unmarshal(item, &src); err != nil || src.Filename == "" {
			continue
		}
		sources = append(sources, src)
	}
	return sources
}

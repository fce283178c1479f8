package server

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// HealthPath is skipped by [Logging] so probes do not flood the log.
const HealthPath = "/api/health"

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Defaults returns the middleware every site router starts with: request ids, client address
// resolution from proxy headers, and panic recovery.
func Defaults() []Middleware {
	return []Middleware{middleware.RequestID, middleware.RealIP, middleware.Recoverer}
}

// Logging logs one line per request with its status and duration.
func Logging(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == HealthPath {
				next.ServeHTTP(w, r)
				return
			}

			recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(recorder, r)

			kv := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
			}
			if id := middleware.GetReqID(r.Context()); id != "" {
				kv = append(kv, "request_id", id)
			}
			logger.Info("http request", kv...)
		})
	}
}

// SecurityHeaders sets conservative response headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// clientLimiter keeps one token bucket per client address.
type clientLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
}

func (c *clientLimiter) get(key string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.limiters[key]
	if !ok {
		l = rate.NewLimiter(c.limit, c.burst)
		c.limiters[key] = l
	}
	return l
}

// retryAfter is the number of whole seconds until one token refills.
func (c *clientLimiter) retryAfter() string {
	secs := int(math.Ceil(1 / float64(c.limit)))
	return strconv.Itoa(max(secs, 1))
}

// RateLimit allows each client perSecond requests with the given burst, answering
// 429 with a JSON error once the bucket is empty. A non-positive rate disables limiting.
func RateLimit(perSecond float64, burst int) Middleware {
	if perSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	c := &clientLimiter{
		limit:    rate.Limit(perSecond),
		burst:    max(burst, 1),
		limiters: make(map[string]*rate.Limiter),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !c.get(clientKey(r)).Allow() {
				w.Header().Set("Retry-After", c.retryAfter())
				WriteError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// WriteError writes {"error": msg} with the given status.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}

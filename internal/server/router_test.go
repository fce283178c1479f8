package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBasicRouter(t *testing.T) {
	t.Run("routes by method and path", func(t *testing.T) {
		r := NewBasicRouter()
		r.HandleFunc(http.MethodGet, "/courses/{id}", func(w http.ResponseWriter, req *http.Request) {
			_, _ = w.Write([]byte(req.PathValue("id")))
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/ml-foundations", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := rec.Body.String(); got != "ml-foundations" {
			t.Errorf("expected path value ml-foundations, got %q", got)
		}
	})

	t.Run("rejects other methods", func(t *testing.T) {
		r := NewBasicRouter()
		r.HandleFunc(http.MethodPost, "/ask", func(w http.ResponseWriter, req *http.Request) {})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ask", nil))

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})

	t.Run("empty method matches everything", func(t *testing.T) {
		r := NewBasicRouter()
		r.HandleFunc("", "/", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(method, "/anything", nil))
			if rec.Code != http.StatusTeapot {
				t.Errorf("%s: expected 418, got %d", method, rec.Code)
			}
		}
	})

	t.Run("middleware runs in registration order", func(t *testing.T) {
		var order []string
		mark := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, req)
				})
			}
		}

		r := NewBasicRouter()
		r.Use(mark("first"), mark("second"))
		r.HandleFunc(http.MethodGet, "/", func(w http.ResponseWriter, req *http.Request) {
			order = append(order, "handler")
		})

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		want := []string{"first", "second", "handler"}
		if len(order) != len(want) {
			t.Fatalf("expected %v, got %v", want, order)
		}
		for i := range want {
			if order[i] != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], order[i])
			}
		}
	})
}

func TestPattern(t *testing.T) {
	tests := []struct {
		method, path, want string
	}{
		{"GET", "/", "GET /"},
		{"post", "/ask", "POST /ask"},
		{"", "/", "/"},
		{" get ", "/courses/{id}", "GET /courses/{id}"},
	}

	for _, tt := range tests {
		if got := Pattern(tt.method, tt.path); got != tt.want {
			t.Errorf("Pattern(%q, %q) = %q, want %q", tt.method, tt.path, got, tt.want)
		}
	}
}

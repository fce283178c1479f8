// Package server provides HTTP routing, middleware and a graceful server loop for the web front end.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers with the first added running outermost, following the standard Go pattern.
// [Chain] applies the same ordering to a single handler, which is how per-route middleware such as
// [RateLimit] is attached.
//
// The [BasicRouter] implementation uses [http.ServeMux] patterns ("GET /courses/{id}") so wildcards
// and 405 responses come from the standard mux.
//
// # Middleware
//
//   - [Defaults]: chi's RequestID, RealIP and Recoverer
//   - [Logging]: one structured log line per request, skipping [HealthPath]
//   - [SecurityHeaders]: nosniff, frame denial and referrer policy
//   - [RateLimit]: per-client token buckets from golang.org/x/time/rate
//
// # Serving
//
// [Serve] runs an [http.Server] until its context is cancelled and then shuts it down,
// waiting up to [ShutdownTimeout] for in-flight requests.
package server

package ui

import (
	"net/url"
	"strings"
)

// RouteKind selects the top-level view.
type RouteKind int

const (
	LandingRoute RouteKind = iota
	CourseRoute
	NotFoundRoute
)

// Route is a parsed application path.
type Route struct {
	Kind     RouteKind
	CourseID string
}

// ParseRoute maps a path onto a view: "/" is the catalog, "/courses/{id}" a course page,
// and anything else falls back to the catalog.
//
// Unknown course ids are resolved later, when the catalog is consulted.
func ParseRoute(path string) Route {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	rest, ok := strings.CutPrefix(path, "/courses/")
	if !ok {
		return Route{Kind: LandingRoute}
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return Route{Kind: LandingRoute}
	}

	id, err := url.PathUnescape(rest)
	if err != nil || id == "" {
		return Route{Kind: LandingRoute}
	}
	return Route{Kind: CourseRoute, CourseID: id}
}

// String renders the route back into a path.
func (r Route) String() string {
	switch r.Kind {
	case CourseRoute, NotFoundRoute:
		return "/courses/" + url.PathEscape(r.CourseID)
	default:
		return "/"
	}
}

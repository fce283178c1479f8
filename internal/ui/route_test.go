package ui

import "testing"

func TestParseRoute(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Route
	}{
		{"root", "/", Route{Kind: LandingRoute}},
		{"empty", "", Route{Kind: LandingRoute}},
		{"course", "/courses/ml-foundations", Route{Kind: CourseRoute, CourseID: "ml-foundations"}},
		{"trailing slash", "/courses/ml-foundations/", Route{Kind: CourseRoute, CourseID: "ml-foundations"}},
		{"query string", "/courses/ml-foundations?v=2", Route{Kind: CourseRoute, CourseID: "ml-foundations"}},
		{"escaped id", "/courses/data%20science", Route{Kind: CourseRoute, CourseID: "data science"}},
		{"missing id", "/courses/", Route{Kind: LandingRoute}},
		{"nested", "/courses/a/b", Route{Kind: LandingRoute}},
		{"unknown", "/pricing", Route{Kind: LandingRoute}},
		{"bad escape", "/courses/%zz", Route{Kind: LandingRoute}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRoute(tt.path); got != tt.want {
				t.Errorf("ParseRoute(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRouteString(t *testing.T) {
	if got := (Route{Kind: LandingRoute}).String(); got != "/" {
		t.Errorf("expected /, got %s", got)
	}
	r := Route{Kind: CourseRoute, CourseID: "ml-foundations"}
	if got := ParseRoute(r.String()); got != r {
		t.Errorf("expected round trip, got %+v", got)
	}
}

func TestLoadMascot(t *testing.T) {
	first := LoadMascot()
	if first == "" {
		t.Fatal("expected mascot art")
	}
	if second := LoadMascot(); second != first {
		t.Error("expected cached mascot on later calls")
	}
}

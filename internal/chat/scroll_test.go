package chat

import (
	"testing"
	"time"
)

func TestScroll(t *testing.T) {
	t.Run("Distance", func(t *testing.T) {
		tc := []struct {
			pos  Position
			want int
		}{
			{Position{Total: 0, Offset: 0, Height: 10}, 0},
			{Position{Total: 30, Offset: 20, Height: 10}, 0},
			{Position{Total: 30, Offset: 10, Height: 10}, 10},
			{Position{Total: 30, Offset: 18, Height: 10}, 2},
		}
		for _, tt := range tc {
			if got := tt.pos.Distance(); got != tt.want {
				t.Errorf("%+v.Distance() = %d, want %d", tt.pos, got, tt.want)
			}
		}
	})

	t.Run("follows when near the bottom", func(t *testing.T) {
		s := NewScroll(3)
		if !s.ContentChanged(Position{Total: 40, Offset: 28, Height: 10}) {
			t.Error("expected to follow within threshold")
		}
		if s.ShowLatest() {
			t.Error("affordance should be hidden")
		}
	})

	t.Run("shows affordance when scrolled up", func(t *testing.T) {
		s := NewScroll(3)
		if s.ContentChanged(Position{Total: 40, Offset: 5, Height: 10}) {
			t.Error("should not jump when the reader scrolled away")
		}
		if !s.ShowLatest() {
			t.Error("expected scroll-to-latest affordance")
		}

		s.JumpToLatest()
		if s.ShowLatest() {
			t.Error("expected affordance cleared after jump")
		}
	})

	t.Run("manual scroll recomputes affordance", func(t *testing.T) {
		s := NewScroll(3)
		s.Scrolled(Position{Total: 40, Offset: 0, Height: 10})
		if !s.ShowLatest() {
			t.Error("expected affordance after scrolling up")
		}
		s.Scrolled(Position{Total: 40, Offset: 30, Height: 10})
		if s.ShowLatest() {
			t.Error("expected affordance hidden at the bottom")
		}
	})

	t.Run("negative threshold uses default", func(t *testing.T) {
		if got := NewScroll(-1).Threshold(); got != DefaultScrollThreshold {
			t.Errorf("expected %d, got %d", DefaultScrollThreshold, got)
		}
	})
}

func TestGreeting(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tc := map[int]string{
		0:  "Good morning",
		11: "Good morning",
		12: "Good afternoon",
		17: "Good afternoon",
		18: "Good evening",
		23: "Good evening",
	}
	for hour, want := range tc {
		if got := Greeting(day.Add(time.Duration(hour) * time.Hour)); got != want {
			t.Errorf("Greeting(%02d:00) = %q, want %q", hour, got, want)
		}
	}
}

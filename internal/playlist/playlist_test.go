package playlist

import (
	"errors"
	"testing"

	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/shared"
	"pgregory.net/rapid"
)

func videos(n int) []models.Video {
	out := make([]models.Video, n)
	for i := range out {
		out[i] = models.Video{
			ID:     "v" + LessonNumber(i),
			Title:  "Lesson " + LessonNumber(i),
			URL:    "https://example.com/" + LessonNumber(i) + ".mp4",
			Length: "10:0" + string(rune('0'+i%10)),
		}
	}
	return out
}

func TestPlaylist(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		p := New("course", "Course", videos(3))

		if p.Index() != 0 {
			t.Errorf("expected index 0, got %d", p.Index())
		}
		if !p.Autoplay() {
			t.Error("expected autoplay on by default")
		}
		current, ok := p.Current()
		if !ok || current.ID != "v01" {
			t.Errorf("expected v01 current, got %v", current.ID)
		}
	})

	t.Run("Select", func(t *testing.T) {
		p := New("course", "Course", videos(3))

		req, err := p.Select(2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Index != 2 || req.Video.ID != "v03" {
			t.Errorf("unexpected request %+v", req)
		}
		if p.Index() != 2 {
			t.Errorf("expected index 2, got %d", p.Index())
		}

		for _, i := range []int{-1, 3, 100} {
			if _, err := p.Select(i); !errors.Is(err, shared.ErrOutOfRange) {
				t.Errorf("Select(%d): expected ErrOutOfRange, got %v", i, err)
			}
			if p.Index() != 2 {
				t.Errorf("Select(%d) changed index to %d", i, p.Index())
			}
		}
	})

	t.Run("Ended advances with autoplay", func(t *testing.T) {
		p := New("course", "Course", videos(3))

		req, ok := p.Ended()
		if !ok || req.Index != 1 {
			t.Fatalf("expected advance to 1, got %+v (%v)", req, ok)
		}
		p.Ended()
		if _, ok := p.Ended(); ok {
			t.Error("expected no advance past the last video")
		}
		if p.Index() != 2 {
			t.Errorf("expected to hold on last video, got %d", p.Index())
		}
	})

	t.Run("Ended holds without autoplay", func(t *testing.T) {
		p := New("course", "Course", videos(3))
		p.SetAutoplay(false)

		if _, ok := p.Ended(); ok {
			t.Error("expected no advance with autoplay off")
		}
		if p.Index() != 0 {
			t.Errorf("expected index 0, got %d", p.Index())
		}

		if !p.ToggleAutoplay() {
			t.Error("expected toggle to re-enable autoplay")
		}
		if _, ok := p.Ended(); !ok {
			t.Error("expected advance after re-enabling autoplay")
		}
	})

	t.Run("Finished ignores stale requests", func(t *testing.T) {
		p := New("course", "Course", videos(3))

		first, _ := p.Play()
		second, _ := p.Select(1)

		if _, ok := p.Finished(first); ok {
			t.Error("stale request should not advance")
		}
		if p.Index() != 1 {
			t.Errorf("expected index 1, got %d", p.Index())
		}

		next, ok := p.Finished(second)
		if !ok || next.Index != 2 {
			t.Errorf("expected advance to 2, got %+v (%v)", next, ok)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		p := New("a", "A", videos(3))
		p.Select(2)

		p.Reset("a", "A", videos(3))
		if p.Index() != 2 {
			t.Errorf("same key should keep position, got %d", p.Index())
		}

		p.Reset("b", "B", videos(4))
		if p.Index() != 0 {
			t.Errorf("new key should reset position, got %d", p.Index())
		}
		if p.Title() != "B" || p.Len() != 4 {
			t.Errorf("unexpected playlist %s/%d", p.Title(), p.Len())
		}

		p.Select(3)
		p.Reset("b", "B", videos(2))
		if p.Index() != 0 {
			t.Errorf("shrunk playlist should clamp to 0, got %d", p.Index())
		}
	})

	t.Run("Empty", func(t *testing.T) {
		p := New("empty", "Empty", nil)

		if !p.Empty() {
			t.Error("expected empty playlist")
		}
		if _, ok := p.Current(); ok {
			t.Error("expected no current video")
		}
		if _, ok := p.Play(); ok {
			t.Error("expected no play request")
		}
		if _, ok := p.Ended(); ok {
			t.Error("expected no advance")
		}
		if p.TotalDuration() != "" {
			t.Errorf("expected empty duration, got %q", p.TotalDuration())
		}
	})

	t.Run("display helpers", func(t *testing.T) {
		vs := videos(3)
		vs[1].Length = ""
		p := New("course", "Course", vs)

		if got := p.TotalDuration(); got != "10:00 • 10:02" {
			t.Errorf("unexpected total duration %q", got)
		}
		if got := p.LessonCount(); got != "3 lessons" {
			t.Errorf("unexpected lesson count %q", got)
		}
		if got := New("one", "One", videos(1)).LessonCount(); got != "1 lesson" {
			t.Errorf("unexpected lesson count %q", got)
		}
		if p.Status(0) != StatusPlaying || p.Status(1) != StatusIdle {
			t.Error("unexpected status labels")
		}
		if LessonNumber(0) != "01" || LessonNumber(11) != "12" {
			t.Error("expected two-digit lesson numbers")
		}
	})
}

func TestPlaylistProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(t, "videos")
		p := New("course", "Course", videos(n))

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for range steps {
			before := p.Index()

			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				i := rapid.IntRange(-2, n+2).Draw(t, "index")
				_, err := p.Select(i)
				if i >= 0 && i < n {
					if err != nil || p.Index() != i {
						t.Fatalf("Select(%d) failed: %v", i, err)
					}
				} else if err == nil || p.Index() != before {
					t.Fatalf("Select(%d) should fail and keep %d", i, before)
				}
			case 1:
				_, advanced := p.Ended()
				switch {
				case !p.Autoplay() && p.Index() != before:
					t.Fatal("advanced with autoplay off")
				case p.Autoplay() && before < n-1 && (!advanced || p.Index() != before+1):
					t.Fatalf("expected advance from %d", before)
				case before == n-1 && p.Index() != before:
					t.Fatal("wrapped past the last video")
				}
			case 2:
				p.ToggleAutoplay()
			case 3:
				p.Play()
			}

			if n > 0 && (p.Index() < 0 || p.Index() >= n) {
				t.Fatalf("index %d out of range [0, %d)", p.Index(), n)
			}
		}
	})
}

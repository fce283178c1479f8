package playlist

import (
	"fmt"
	"slices"
	"strings"

	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/shared"
)

const (
	StatusPlaying = "Playing"
	StatusIdle    = "Play"
)

// Request asks a [Player] to start a video from the beginning.
type Request struct {
	Key        string       // Playlist key the request belongs to
	Index      int          // Position of Video in the playlist
	Video      models.Video // Video to play
	Generation uint64       // Playlist generation the request was issued under
}

// Playlist tracks the current lesson of one course.
type Playlist struct {
	key        string
	title      string
	videos     []models.Video
	index      int
	autoplay   bool
	generation uint64
}

// New creates a playlist positioned on the first video with autoplay enabled.
func New(key, title string, videos []models.Video) *Playlist {
	return &Playlist{
		key:      key,
		title:    title,
		videos:   slices.Clone(videos),
		autoplay: true,
	}
}

// ForCourse creates a playlist scoped to course.
func ForCourse(course models.Course) *Playlist {
	return New(course.ID, course.Title, course.Videos)
}

func (p *Playlist) Key() string            { return p.key }
func (p *Playlist) Title() string          { return p.title }
func (p *Playlist) Len() int               { return len(p.videos) }
func (p *Playlist) Empty() bool            { return len(p.videos) == 0 }
func (p *Playlist) Index() int             { return p.index }
func (p *Playlist) Autoplay() bool         { return p.autoplay }
func (p *Playlist) Generation() uint64     { return p.generation }
func (p *Playlist) Videos() []models.Video { return slices.Clone(p.videos) }

// Current returns the active video. It reports false for an empty playlist.
func (p *Playlist) Current() (models.Video, bool) {
	if p.Empty() {
		return models.Video{}, false
	}
	return p.videos[p.index], true
}

// Reset points the playlist at a new video list. A different key moves back to the first video;
// the same key keeps the position when it is still in range.
func (p *Playlist) Reset(key, title string, videos []models.Video) {
	if key != p.key || p.index >= len(videos) {
		p.index = 0
	}
	p.key = key
	p.title = title
	p.videos = slices.Clone(videos)
	p.generation++
}

// Select makes video i current and returns a request to play it from the start.
//
// Out-of-range indices return [shared.ErrOutOfRange] and leave the playlist unchanged.
func (p *Playlist) Select(i int) (Request, error) {
	if i < 0 || i >= len(p.videos) {
		return Request{}, fmt.Errorf("%w: video %d of %d", shared.ErrOutOfRange, i, len(p.videos))
	}
	p.index = i
	p.generation++
	return p.request(), nil
}

// Play returns a request for the current video without moving.
func (p *Playlist) Play() (Request, bool) {
	if p.Empty() {
		return Request{}, false
	}
	p.generation++
	return p.request(), true
}

// Ended handles the natural end of the current video.
//
// With autoplay on and a next video available it advances and returns a request for it.
// Otherwise the position holds; there is no wraparound.
func (p *Playlist) Ended() (Request, bool) {
	if !p.autoplay || p.index+1 >= len(p.videos) {
		return Request{}, false
	}
	p.index++
	p.generation++
	return p.request(), true
}

// Finished reports the end of playback for req. Requests issued before the latest
// selection or reset are stale and ignored.
func (p *Playlist) Finished(req Request) (Request, bool) {
	if req.Key != p.key || req.Generation != p.generation {
		return Request{}, false
	}
	return p.Ended()
}

func (p *Playlist) SetAutoplay(on bool) { p.autoplay = on }

// ToggleAutoplay flips autoplay and returns the new value.
func (p *Playlist) ToggleAutoplay() bool {
	p.autoplay = !p.autoplay
	return p.autoplay
}

// TotalDuration joins the non-empty lesson lengths with " • ".
func (p *Playlist) TotalDuration() string {
	lengths := make([]string, 0, len(p.videos))
	for _, v := range p.videos {
		if v.Length != "" {
			lengths = append(lengths, v.Length)
		}
	}
	return strings.Join(lengths, " • ")
}

// LessonCount renders the playlist size, e.g. "4 lessons".
func (p *Playlist) LessonCount() string {
	if len(p.videos) == 1 {
		return "1 lesson"
	}
	return fmt.Sprintf("%d lessons", len(p.videos))
}

// Status returns the label shown next to lesson i.
func (p *Playlist) Status(i int) string {
	if i == p.index && !p.Empty() {
		return StatusPlaying
	}
	return StatusIdle
}

// LessonNumber formats a zero-based index as a two-digit, one-based lesson number.
func LessonNumber(i int) string {
	return fmt.Sprintf("%02d", i+1)
}

func (p *Playlist) request() Request {
	return Request{
		Key:        p.key,
		Index:      p.index,
		Video:      p.videos[p.index],
		Generation: p.generation,
	}
}

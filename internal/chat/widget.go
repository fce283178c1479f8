package chat

import (
	"strings"

	"github.com/desertthunder/nova/internal/models"
)

const (
	DefaultGreeting = "Hey there! where are you stuck!"
	FallbackAnswer  = "looks like I am out of info, add this in feedback"
	ErrorAnswer     = "connect to api failed"
)

// State is the widget's visibility and request state.
type State int

const (
	Closed State = iota
	OpenIdle
	OpenWaiting
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case OpenIdle:
		return "open"
	case OpenWaiting:
		return "waiting"
	default:
		return ""
	}
}

// OpenRequest asks the application shell to show the chat widget.
type OpenRequest struct {
	Origin string // View that asked, e.g. "landing" or a course id
}

// Request is the outbound question produced by a submit.
type Request struct {
	Query string
}

// Widget is the chat assistant's state. It is not safe for concurrent use.
type Widget struct {
	visible    bool
	waiting    bool
	origin     string
	input      string
	transcript *Transcript
}

// NewWidget returns a closed widget whose transcript is seeded with greeting.
func NewWidget(greeting string) *Widget {
	if greeting == "" {
		greeting = DefaultGreeting
	}
	return &Widget{transcript: NewTranscript(greeting)}
}

// State reports the current state. A request still in flight after Close reports [Closed].
func (w *Widget) State() State {
	switch {
	case !w.visible:
		return Closed
	case w.waiting:
		return OpenWaiting
	default:
		return OpenIdle
	}
}

func (w *Widget) Visible() bool  { return w.visible }
func (w *Widget) Waiting() bool  { return w.waiting }
func (w *Widget) Origin() string { return w.origin }
func (w *Widget) Input() string  { return w.input }

// SetInput replaces the input buffer.
func (w *Widget) SetInput(s string) { w.input = s }

// Open shows the widget. Opening an open widget only updates the origin.
func (w *Widget) Open(origin string) {
	w.visible = true
	w.origin = origin
}

// Close hides the widget, keeping the transcript, the input, and any request in flight.
func (w *Widget) Close() { w.visible = false }

// Submit sends the input buffer.
//
// Submits on a closed widget, blank input and submits while a request is in flight are ignored.
// Otherwise the input is appended as typed, the buffer is cleared, and the widget waits for [Widget.Resolve].
func (w *Widget) Submit() (Request, bool) {
	if !w.visible || w.waiting || strings.TrimSpace(w.input) == "" {
		return Request{}, false
	}

	msg := w.transcript.Append(models.AuthorUser, w.input)
	w.input = ""
	w.waiting = true
	return Request{Query: msg.Text}, true
}

// Resolve records the outcome of the request in flight.
//
// A failed request appends [ErrorAnswer]; an empty answer appends [FallbackAnswer].
// It reports false when no request is in flight.
func (w *Widget) Resolve(answer string, err error) (models.ChatMessage, bool) {
	if !w.waiting {
		return models.ChatMessage{}, false
	}
	w.waiting = false

	text := strings.TrimSpace(answer)
	switch {
	case err != nil:
		text = ErrorAnswer
	case text == "":
		text = FallbackAnswer
	}
	return w.transcript.Append(models.AuthorBot, text), true
}

// Messages returns the transcript.
func (w *Widget) Messages() []models.ChatMessage { return w.transcript.Messages() }

// Len returns the transcript length.
func (w *Widget) Len() int { return w.transcript.Len() }

// LastAnswer returns the newest bot message text.
func (w *Widget) LastAnswer() (string, bool) {
	msg, ok := w.transcript.Last(models.AuthorBot)
	return msg.Text, ok
}

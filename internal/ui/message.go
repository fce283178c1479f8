package ui

import (
	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/playlist"
)

// answerMsg carries the answering service's reply to a chat question.
type answerMsg struct {
	answer *models.Answer
	err    error
}

// playbackStartedMsg reports the outcome of launching the player for req.
type playbackStartedMsg struct {
	req     playlist.Request
	session playlist.Session
	err     error
}

// playbackEndedMsg reports that the session for req stopped. A nil err is a natural end.
type playbackEndedMsg struct {
	req playlist.Request
	err error
}

// copiedMsg reports a clipboard write.
type copiedMsg struct {
	err error
}

// openedMsg reports handing a URL to the system browser.
type openedMsg struct {
	url string
	err error
}

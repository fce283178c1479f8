package chat

import (
	"fmt"
	"slices"

	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/shared"
)

// WelcomeID identifies the greeting that seeds every transcript.
const WelcomeID = "welcome"

// Transcript is an append-only list of chat messages.
type Transcript struct {
	messages []models.ChatMessage
	seq      uint64
	newID    func() string
}

// NewTranscript returns a transcript holding a single bot greeting.
func NewTranscript(greeting string) *Transcript {
	return &Transcript{
		messages: []models.ChatMessage{{ID: WelcomeID, Author: models.AuthorBot, Text: greeting}},
		newID:    shared.GenerateID,
	}
}

// Append adds a message and returns it. IDs combine the author, a per-transcript sequence and a random suffix.
func (t *Transcript) Append(author models.Author, text string) models.ChatMessage {
	t.seq++
	msg := models.ChatMessage{
		ID:     fmt.Sprintf("%s-%d-%s", author, t.seq, t.newID()),
		Author: author,
		Text:   text,
	}
	t.messages = append(t.messages, msg)
	return msg
}

func (t *Transcript) Len() int { return len(t.messages) }

// Messages returns a copy of the transcript in order.
func (t *Transcript) Messages() []models.ChatMessage { return slices.Clone(t.messages) }

// Last returns the newest message written by author.
func (t *Transcript) Last(author models.Author) (models.ChatMessage, bool) {
	for i := len(t.messages) - 1; i >= 0; i-- {
		if t.messages[i].Author == author {
			return t.messages[i], true
		}
	}
	return models.ChatMessage{}, false
}

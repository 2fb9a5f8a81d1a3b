package session

import (
	"errors"
	"fmt"
)

// Turn is the state of a two-speaker conversation.
type Turn int

const (
	Inactive Turn = iota
	Speaker1Turn
	Speaker2Turn
)

func (t Turn) String() string {
	switch t {
	case Speaker1Turn:
		return "speaker1"
	case Speaker2Turn:
		return "speaker2"
	default:
		return "inactive"
	}
}

var (
	ErrConversationInactive = errors.New("conversation not active")
	ErrOutOfTurn            = errors.New("not this speaker's turn")
	ErrInvalidSpeaker       = errors.New("speaker must be 1 or 2")
)

// Conversation alternates turns between two speakers. Speaker 1 speaks
// Language1 and is translated into Language2; speaker 2 the other way round.
// Turns advance only on a completed translation.
type Conversation struct {
	Turn      Turn   `json:"-"`
	Language1 string `json:"speaker1,omitempty"`
	Language2 string `json:"speaker2,omitempty"`
	Exchanges int    `json:"exchanges"`
}

// Active reports whether a conversation is running.
func (c Conversation) Active() bool {
	return c.Turn != Inactive
}

// Start begins a new conversation with speaker 1 to talk first. A running
// conversation is restarted.
func (c *Conversation) Start(lang1, lang2 string) {
	*c = Conversation{Turn: Speaker1Turn, Language1: lang1, Language2: lang2}
}

// Stop ends the conversation.
func (c *Conversation) Stop() {
	c.Turn = Inactive
}

// Expect checks that speaker may record now and returns the source and
// target language codes for the turn.
func (c Conversation) Expect(speaker int) (source, target string, err error) {
	if speaker != 1 && speaker != 2 {
		return "", "", ErrInvalidSpeaker
	}
	if !c.Active() {
		return "", "", ErrConversationInactive
	}
	if Turn(speaker) != c.Turn {
		return "", "", fmt.Errorf("%w: waiting for %s", ErrOutOfTurn, c.Turn)
	}
	if speaker == 1 {
		return c.Language1, c.Language2, nil
	}
	return c.Language2, c.Language1, nil
}

// Advance hands the turn to the other speaker.
func (c *Conversation) Advance() {
	switch c.Turn {
	case Speaker1Turn:
		c.Turn = Speaker2Turn
	case Speaker2Turn:
		c.Turn = Speaker1Turn
	default:
		return
	}
	c.Exchanges++
}

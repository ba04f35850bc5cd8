package deck

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mailswipe/mailswipe/internal/backend"
	"github.com/mailswipe/mailswipe/internal/parse"
)

// Kind says where an accepted card gets written.
type Kind int

const (
	KindEvent Kind = iota // calendar event, parsed time range present
	KindTask              // reminder/to-do, no usable time range
)

func (k Kind) String() string {
	if k == KindEvent {
		return "event"
	}
	return "task"
}

// Card is one swipeable unit: an email plus whatever event information the
// parser extracted from it.
type Card struct {
	ID       string // local identity, also the store key for saved items
	EmailID  string // backend's identifier, "" when the feed carries none
	From     string
	Subject  string
	Received string
	Preview  string
	Event    parse.Event
}

// Kind classifies the card: a valid parsed time range makes it a calendar
// candidate, anything else becomes a to-do.
func (c Card) Kind() Kind {
	if c.Event.Valid() {
		return KindEvent
	}
	return KindTask
}

// Clone returns a deep copy, so a recorded snapshot cannot be corrupted by
// later mutation of the live card.
func (c Card) Clone() Card {
	out := c
	if c.Event.Start != nil {
		start := *c.Event.Start
		out.Event.Start = &start
	}
	if c.Event.End != nil {
		end := *c.Event.End
		out.Event.End = &end
	}
	return out
}

// Summary is a one-line description used for the status bar and clipboard.
func (c Card) Summary() string {
	if c.Kind() == KindTask {
		return fmt.Sprintf("Task: %s (from %s)", c.Subject, c.From)
	}
	s := fmt.Sprintf("%s: %s - %s",
		c.Subject,
		c.Event.Start.Format("Jan 2, 2006 3:04 PM"),
		c.Event.End.Format("3:04 PM"))
	if c.Event.Location != "" {
		s += " @ " + c.Event.Location
	}
	return s
}

// Cards converts a fetched email feed into cards, running the parser over
// each preview.
func Cards(emails []backend.Email) []Card {
	cards := make([]Card, 0, len(emails))
	for _, e := range emails {
		cards = append(cards, Card{
			ID:       uuid.NewString(),
			EmailID:  e.ID,
			From:     e.From,
			Subject:  e.Subject,
			Received: e.Date,
			Preview:  e.Preview,
			Event:    parse.ParseEvent(e.Preview),
		})
	}
	return cards
}

func eventFromCard(c Card) (backend.EventRequest, error) {
	if !c.Event.Valid() {
		return backend.EventRequest{}, fmt.Errorf("card %s has no parsed time range", c.ID)
	}
	return backend.EventRequest{
		Title:     c.Subject,
		Location:  c.Event.Location,
		StartDate: c.Event.Start.Format(time.RFC3339),
		EndDate:   c.Event.End.Format(time.RFC3339),
		Notes:     "From: " + c.From,
	}, nil
}

func reminderFromCard(c Card) backend.ReminderRequest {
	return backend.ReminderRequest{
		Title: c.Subject,
		Notes: c.Preview,
	}
}

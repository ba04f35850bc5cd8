// Package deck holds the triage session: the remaining cards, the undo/redo
// ledger, and the accept/reject logic that talks to the validation backend
// and the local store.
package deck

import (
	"context"
	"fmt"
	"sync"

	"github.com/mailswipe/mailswipe/internal/backend"
	"github.com/mailswipe/mailswipe/internal/history"
	"github.com/mailswipe/mailswipe/internal/store"
)

// RejectedError means the backend answered but refused to validate the item.
// The card stays on the deck; the reason is shown to the user.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "validation rejected: " + e.Reason
}

// Deck is one interactive triage session. All methods hold the mutex for the
// whole logical operation, so the pop/record pairs stay atomic even when the
// UI drives operations from command goroutines.
type Deck struct {
	mu     sync.Mutex
	cards  []Card
	hist   history.History
	store  *store.DB
	client *backend.Client
}

func New(st *store.DB, client *backend.Client) *Deck {
	return &Deck{store: st, client: client}
}

// Load fetches the email feed and turns it into cards, replacing any cards
// already on the deck. The ledger is not reset; history spans the session.
func (d *Deck) Load(ctx context.Context, useTestFeed bool) error {
	var emails []backend.Email
	var err error
	if useTestFeed {
		emails, err = d.client.TestEmails(ctx)
	} else {
		emails, err = d.client.Emails(ctx)
	}
	if err != nil {
		return fmt.Errorf("fetch emails: %w", err)
	}

	cards := Cards(emails)
	d.mu.Lock()
	d.cards = cards
	d.mu.Unlock()
	return nil
}

// SetCards replaces the deck contents directly (no fetch).
func (d *Deck) SetCards(cards []Card) {
	d.mu.Lock()
	d.cards = cards
	d.mu.Unlock()
}

// Top returns the current card without removing it.
func (d *Deck) Top() (Card, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[0], true
}

func (d *Deck) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cards)
}

func (d *Deck) CanUndo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hist.CanUndo()
}

func (d *Deck) CanRedo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hist.CanRedo()
}

// Accept validates the top card against the backend and, on success, writes
// it into the store and records the save. A backend rejection (success=false)
// comes back as *RejectedError and leaves the deck untouched.
func (d *Deck) Accept(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.cards) == 0 {
		return "", fmt.Errorf("no cards left")
	}
	card := d.cards[0]

	var msg string
	switch card.Kind() {
	case KindEvent:
		req, err := eventFromCard(card)
		if err != nil {
			return "", err
		}
		resp, err := d.client.ValidateEvent(ctx, req)
		if err != nil {
			return "", err
		}
		if !resp.Success {
			return "", &RejectedError{Reason: resp.Message}
		}
		if err := d.store.SaveEvent(storeEvent(card)); err != nil {
			return "", err
		}
		msg = "Saved to calendar: " + card.Subject

	case KindTask:
		resp, err := d.client.ValidateReminder(ctx, reminderFromCard(card))
		if err != nil {
			return "", err
		}
		if !resp.Success {
			return "", &RejectedError{Reason: resp.Message}
		}
		if err := d.store.SaveReminder(storeReminder(card)); err != nil {
			return "", err
		}
		msg = "Saved to reminders: " + card.Subject
	}

	d.cards = d.cards[1:]
	d.hist.Record(history.Save{
		Snapshot:         card.Clone(),
		AddedToCalendar:  card.Kind() == KindEvent,
		AddedToReminders: card.Kind() == KindTask,
	})
	return msg, nil
}

// Reject dismisses the top card and records the deletion with a snapshot, so
// undo can put it back exactly as it was.
func (d *Deck) Reject() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.cards) == 0 {
		return "", fmt.Errorf("no cards left")
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	d.hist.Record(history.Delete{
		Snapshot: card.Clone(),
		EmailID:  card.EmailID,
	})
	return "Dismissed: " + card.Subject, nil
}

// Undo reverses the most recent swipe: a rejected card is reinserted, a saved
// card is removed from the store and reinserted.
func (d *Deck) Undo() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	op := d.hist.Undo()
	if op == nil {
		return "Nothing to undo", nil
	}

	switch op := op.(type) {
	case history.Delete:
		card := op.Snapshot.(Card)
		d.cards = append([]Card{card}, d.cards...)
		return "Restored: " + card.Subject, nil

	case history.Save:
		card := op.Snapshot.(Card)
		if op.AddedToCalendar {
			if err := d.store.DeleteEvent(card.ID); err != nil {
				return "", err
			}
		}
		if op.AddedToReminders {
			if err := d.store.DeleteReminder(card.ID); err != nil {
				return "", err
			}
		}
		d.cards = append([]Card{card}, d.cards...)
		return "Unsaved: " + card.Subject, nil
	}
	return "", fmt.Errorf("unknown operation %T", op)
}

// Redo re-applies an undone swipe. Saves replay the already-validated payload
// straight into the store; there is no second validation round-trip.
func (d *Deck) Redo() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	op := d.hist.Redo()
	if op == nil {
		return "Nothing to redo", nil
	}

	switch op := op.(type) {
	case history.Delete:
		card := op.Snapshot.(Card)
		d.removeCard(card.ID)
		return "Dismissed: " + card.Subject, nil

	case history.Save:
		card := op.Snapshot.(Card)
		if op.AddedToCalendar {
			if err := d.store.SaveEvent(storeEvent(card)); err != nil {
				return "", err
			}
		}
		if op.AddedToReminders {
			if err := d.store.SaveReminder(storeReminder(card)); err != nil {
				return "", err
			}
		}
		d.removeCard(card.ID)
		return "Saved: " + card.Subject, nil
	}
	return "", fmt.Errorf("unknown operation %T", op)
}

func (d *Deck) removeCard(id string) {
	for i, c := range d.cards {
		if c.ID == id {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return
		}
	}
}

func storeEvent(c Card) store.Event {
	return store.Event{
		ID:       c.ID,
		Title:    c.Subject,
		Location: c.Event.Location,
		StartAt:  *c.Event.Start,
		EndAt:    *c.Event.End,
		Notes:    "From: " + c.From,
		EmailID:  c.EmailID,
	}
}

func storeReminder(c Card) store.Reminder {
	return store.Reminder{
		ID:      c.ID,
		Title:   c.Subject,
		Notes:   c.Preview,
		EmailID: c.EmailID,
	}
}

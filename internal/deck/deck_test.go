package deck

import (
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/mailswipe/mailswipe/internal/backend"
	"github.com/mailswipe/mailswipe/internal/parse"
	"github.com/mailswipe/mailswipe/internal/server"
	"github.com/mailswipe/mailswipe/internal/store"
)

// newTestDeck wires a deck against the real validation server and a
// throwaway sqlite store.
func newTestDeck(t *testing.T) (*Deck, *store.DB) {
	t.Helper()
	srv := httptest.NewServer(server.New())
	t.Cleanup(srv.Close)

	db, err := store.Open(filepath.Join(t.TempDir(), "deck.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return New(db, backend.New(srv.URL)), db
}

func eventCard(id string) Card {
	start := time.Date(2024, time.November, 25, 14, 0, 0, 0, time.Local)
	end := start.Add(90 * time.Minute)
	return Card{
		ID:      id,
		EmailID: "mail-" + id,
		From:    "team@company.com",
		Subject: "Team Meeting " + id,
		Preview: "planning session",
		Event:   parse.Event{Start: &start, End: &end, Location: "Conference Room A", HasMarker: true},
	}
}

func taskCard(id string) Card {
	return Card{
		ID:      id,
		EmailID: "mail-" + id,
		From:    "boss@company.com",
		Subject: "Expense Report " + id,
		Preview: "please submit by end of week",
	}
}

func TestLoadTestFeed(t *testing.T) {
	d, _ := newTestDeck(t)

	if err := d.Load(context.Background(), true); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Remaining() != 10 {
		t.Fatalf("Remaining = %d, want 10", d.Remaining())
	}

	top, ok := d.Top()
	if !ok {
		t.Fatal("Top() empty after load")
	}
	if top.Kind() != KindEvent {
		t.Errorf("first test email should parse as event, got %s", top.Kind())
	}
	if top.ID == "" {
		t.Error("card ID not assigned")
	}
	if top.EmailID == "" {
		t.Error("EmailID not carried from feed")
	}
}

func TestAcceptEventWritesStore(t *testing.T) {
	d, db := newTestDeck(t)
	d.SetCards([]Card{eventCard("a")})

	msg, err := d.Accept(context.Background())
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if msg != "Saved to calendar: Team Meeting a" {
		t.Errorf("msg = %q", msg)
	}
	if d.Remaining() != 0 {
		t.Errorf("Remaining = %d", d.Remaining())
	}

	events, err := db.Events()
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d", len(events))
	}
	if events[0].ID != "a" || events[0].Location != "Conference Room A" || events[0].EmailID != "mail-a" {
		t.Errorf("stored event = %+v", events[0])
	}
}

func TestAcceptTaskWritesReminder(t *testing.T) {
	d, db := newTestDeck(t)
	d.SetCards([]Card{taskCard("b")})

	msg, err := d.Accept(context.Background())
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if msg != "Saved to reminders: Expense Report b" {
		t.Errorf("msg = %q", msg)
	}

	reminders, err := db.Reminders()
	if err != nil {
		t.Fatalf("Reminders: %v", err)
	}
	if len(reminders) != 1 || reminders[0].Title != "Expense Report b" {
		t.Fatalf("reminders = %+v", reminders)
	}
}

func TestAcceptRejectedByBackendKeepsCard(t *testing.T) {
	d, db := newTestDeck(t)

	// overnight range: parser keeps end before start, backend rejects it
	card := eventCard("night")
	end := card.Event.Start.Add(-22 * time.Hour)
	card.Event.End = &end
	d.SetCards([]Card{card})

	_, err := d.Accept(context.Background())
	var rej *RejectedError
	if !errors.As(err, &rej) {
		t.Fatalf("err = %v, want *RejectedError", err)
	}
	if rej.Reason != "End date must be after start date" {
		t.Errorf("Reason = %q", rej.Reason)
	}
	if d.Remaining() != 1 {
		t.Errorf("card removed after rejection")
	}
	if d.CanUndo() {
		t.Error("rejection recorded in history")
	}
	if n, _ := db.EventCount(); n != 0 {
		t.Errorf("EventCount = %d after rejection", n)
	}
}

func TestRejectUndoRedo(t *testing.T) {
	d, _ := newTestDeck(t)
	d.SetCards([]Card{eventCard("a"), taskCard("b")})

	if _, err := d.Reject(); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if d.Remaining() != 1 {
		t.Fatalf("Remaining = %d", d.Remaining())
	}
	if !d.CanUndo() || d.CanRedo() {
		t.Fatal("history state wrong after reject")
	}

	msg, err := d.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if msg != "Restored: Team Meeting a" {
		t.Errorf("msg = %q", msg)
	}
	top, _ := d.Top()
	if top.ID != "a" {
		t.Errorf("restored card not back on top: %+v", top)
	}
	if !d.CanRedo() {
		t.Fatal("CanRedo = false after undo")
	}

	if _, err := d.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if d.Remaining() != 1 {
		t.Errorf("Remaining = %d after redo", d.Remaining())
	}
	if top, _ := d.Top(); top.ID != "b" {
		t.Errorf("top after redo = %+v", top)
	}
}

func TestUndoAcceptRemovesStoredEvent(t *testing.T) {
	d, db := newTestDeck(t)
	d.SetCards([]Card{eventCard("a")})

	if _, err := d.Accept(context.Background()); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if n, _ := db.EventCount(); n != 1 {
		t.Fatalf("EventCount = %d", n)
	}

	msg, err := d.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if msg != "Unsaved: Team Meeting a" {
		t.Errorf("msg = %q", msg)
	}
	if n, _ := db.EventCount(); n != 0 {
		t.Errorf("EventCount = %d after undo", n)
	}
	if top, _ := d.Top(); top.ID != "a" {
		t.Errorf("card not restored: %+v", top)
	}

	// redo replays the save without a second validation round-trip
	if _, err := d.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if n, _ := db.EventCount(); n != 1 {
		t.Errorf("EventCount = %d after redo", n)
	}
	if d.Remaining() != 0 {
		t.Errorf("Remaining = %d after redo", d.Remaining())
	}
}

func TestNewActionClearsRedo(t *testing.T) {
	d, _ := newTestDeck(t)
	d.SetCards([]Card{eventCard("a"), taskCard("b")})

	d.Reject()
	d.Undo()
	if !d.CanRedo() {
		t.Fatal("CanRedo = false after undo")
	}

	d.Reject() // new action truncates the redo branch
	if d.CanRedo() {
		t.Fatal("CanRedo = true after new action")
	}
	if msg, err := d.Redo(); err != nil || msg != "Nothing to redo" {
		t.Errorf("Redo = %q, %v", msg, err)
	}
}

func TestUndoRedoOnEmptySession(t *testing.T) {
	d, _ := newTestDeck(t)

	if msg, err := d.Undo(); err != nil || msg != "Nothing to undo" {
		t.Errorf("Undo = %q, %v", msg, err)
	}
	if msg, err := d.Redo(); err != nil || msg != "Nothing to redo" {
		t.Errorf("Redo = %q, %v", msg, err)
	}
	if d.CanUndo() || d.CanRedo() {
		t.Error("CanUndo/CanRedo true on fresh deck")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	d, _ := newTestDeck(t)
	card := eventCard("a")
	d.SetCards([]Card{card, taskCard("b")})

	d.Reject()

	// mutate the original card's pointed-to time; the restored snapshot
	// must still carry the value captured at record time
	*card.Event.Start = card.Event.Start.Add(48 * time.Hour)

	d.Undo()
	top, _ := d.Top()
	want := time.Date(2024, time.November, 25, 14, 0, 0, 0, time.Local)
	if !top.Event.Start.Equal(want) {
		t.Errorf("snapshot start = %v, want %v", top.Event.Start, want)
	}
}

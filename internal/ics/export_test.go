package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/mailswipe/mailswipe/internal/store"
)

func TestExport(t *testing.T) {
	start := time.Date(2024, time.November, 25, 14, 0, 0, 0, time.UTC)
	events := []store.Event{
		{
			ID:        "ev-1",
			Title:     "Team Meeting - Q4 Planning",
			Location:  "Conference Room A",
			StartAt:   start,
			EndAt:     start.Add(90 * time.Minute),
			Notes:     "From: team@company.com",
			CreatedAt: start,
		},
		{
			ID:        "ev-2",
			Title:     "Dental Appointment",
			StartAt:   start.Add(48 * time.Hour),
			EndAt:     start.Add(49 * time.Hour),
			CreatedAt: start,
		},
	}

	var b strings.Builder
	if err := Export(&b, events); err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := b.String()

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatalf("missing calendar envelope:\n%s", out)
	}
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("VEVENT count = %d, want 2", got)
	}
	if !strings.Contains(out, "SUMMARY:Team Meeting - Q4 Planning") {
		t.Error("missing summary")
	}
	if !strings.Contains(out, "LOCATION:Conference Room A") {
		t.Error("missing location")
	}
	if !strings.Contains(out, "UID:ev-1") {
		t.Error("missing uid")
	}
}

func TestExportEmpty(t *testing.T) {
	var b strings.Builder
	if err := Export(&b, nil); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(b.String(), "BEGIN:VCALENDAR") {
		t.Error("empty export should still emit a calendar envelope")
	}
}

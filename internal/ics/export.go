// Package ics exports saved calendar events as an iCalendar feed, so the
// store can be imported into any external calendar app.
package ics

import (
	"io"

	ical "github.com/arran4/golang-ical"

	"github.com/mailswipe/mailswipe/internal/store"
)

func Export(w io.Writer, events []store.Event) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//mailswipe//EN")

	for _, ev := range events {
		ve := cal.AddEvent(ev.ID)
		ve.SetDtStampTime(ev.CreatedAt)
		ve.SetCreatedTime(ev.CreatedAt)
		ve.SetStartAt(ev.StartAt)
		ve.SetEndAt(ev.EndAt)
		ve.SetSummary(ev.Title)
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}
		if ev.Notes != "" {
			ve.SetDescription(ev.Notes)
		}
	}

	return cal.SerializeTo(w)
}

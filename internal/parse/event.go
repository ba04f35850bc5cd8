package parse

import (
	"regexp"
	"strings"
	"time"
)

// marker gates parsing: emails from the upstream pipeline announce an event
// with this exact literal. No NLP, no alternate spellings.
const marker = "Event Time:"

const stampLayout = "January 2, 2006 at 3:04 PM"

var (
	// "Event Time: November 25, 2024 at 2:00 PM - 3:30 PM"
	// Month names are matched case-sensitively by the time layout below;
	// only AM/PM is case-insensitive here.
	eventTimeRe = regexp.MustCompile(`Event Time:\s*([A-Za-z]+ \d{1,2}, \d{4}) at (\d{1,2}:\d{2}\s*[AaPp][Mm])\s*-\s*(\d{1,2}:\d{2}\s*[AaPp][Mm])`)

	locationRe = regexp.MustCompile(`Location:[ \t]*([^\r\n]+)`)
)

// ParseEvent scans free-form email text for the event marker and extracts a
// time range and optional location. It never fails: any malformed or missing
// piece degrades to a nil/empty field, and the caller decides what a
// non-valid result means (typically "no event, treat as a task").
func ParseEvent(text string) Event {
	if !strings.Contains(text, marker) {
		return Event{}
	}

	ev := Event{HasMarker: true}

	if m := locationRe.FindStringSubmatch(text); m != nil {
		ev.Location = strings.TrimSpace(m[1])
	}

	m := eventTimeRe.FindStringSubmatch(text)
	if m == nil {
		return ev
	}

	// Start and end share the calendar date; only the clock differs.
	// An end clock earlier than the start clock (overnight ranges) is kept
	// as-is on the same date, so end may sort before start.
	ev.Start = parseStamp(m[1], m[2])
	ev.End = parseStamp(m[1], m[3])
	return ev
}

// parseStamp combines a "November 25, 2024" date with a "2:00 PM" clock and
// parses them in the local zone. Returns nil when the fixed English layout
// does not match (non-English month names fail silently).
func parseStamp(date, clock string) *time.Time {
	clock = strings.ToUpper(strings.Join(strings.Fields(clock), " "))
	if !strings.Contains(clock, " ") && len(clock) > 2 {
		// "2:00PM" -> "2:00 PM" so one layout covers both spellings
		clock = clock[:len(clock)-2] + " " + clock[len(clock)-2:]
	}

	t, err := time.ParseInLocation(stampLayout, date+" at "+clock, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

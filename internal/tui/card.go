package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/mailswipe/mailswipe/internal/deck"
)

// wrapText breaks text into lines of at most width visible columns,
// preferring word boundaries.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var out []string
	for _, raw := range strings.Split(text, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, w := range words {
			if line == "" {
				line = w
				continue
			}
			if runewidth.StringWidth(line)+1+runewidth.StringWidth(w) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	return out
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "...")
	}
	return s
}

// renderCard renders the current card's panel content.
func renderCard(c deck.Card, width, height int) string {
	var lines []string

	badge := styleBadgeTask.Render("[TASK]")
	if c.Kind() == deck.KindEvent {
		badge = styleBadgeEvent.Render("[EVENT]")
	}
	lines = append(lines, badge+" "+styleSubject.Render(truncate(c.Subject, width-9)))
	lines = append(lines, styleFrom.Render(truncate("From: "+c.From, width)))
	if c.Received != "" {
		lines = append(lines, styleMeta.Render(truncate("Received: "+c.Received, width)))
	}
	lines = append(lines, "")

	if c.Kind() == deck.KindEvent {
		lines = append(lines, styleEventLine.Render(truncate(fmt.Sprintf("  When:  %s - %s",
			c.Event.Start.Format("Mon, Jan 2 2006 3:04 PM"),
			c.Event.End.Format("3:04 PM")), width)))
		if c.Event.Location != "" {
			lines = append(lines, styleEventLine.Render(truncate("  Where: "+c.Event.Location, width)))
		}
		lines = append(lines, "")
	} else if c.Event.HasMarker {
		// marker present but unparsable: still a task, tell the user why
		lines = append(lines, styleMeta.Render("  (event marker found but time range unreadable)"))
		lines = append(lines, "")
	}

	bodyBudget := height - len(lines)
	if bodyBudget > 0 {
		body := wrapText(c.Preview, width)
		if len(body) > bodyBudget {
			body = body[:bodyBudget]
		}
		for _, l := range body {
			lines = append(lines, styleBody.Render(l))
		}
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

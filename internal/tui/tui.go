// Package tui is the interactive triage deck: one card at a time, accept or
// dismiss, with session-scoped undo/redo.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mailswipe/mailswipe/internal/deck"
)

// actionResultMsg reports a completed accept/reject/undo/redo.
type actionResultMsg struct {
	msg string
	err error
}

type model struct {
	deck      *deck.Deck
	status    string
	statusOK  bool
	statusErr bool
	busy      bool // accept in flight; swipe keys ignored until it lands
	width     int
	height    int
	ready     bool
	quitting  bool
}

// Run starts the triage TUI and blocks until the user quits.
func Run(d *deck.Deck) error {
	m := model{deck: d}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Accept):
			if m.busy || m.deck.Remaining() == 0 {
				return m, nil
			}
			m.busy = true
			m.setStatus("Validating...", false, false)
			return m, acceptCmd(m.deck)

		case key.Matches(msg, keys.Reject):
			if m.busy || m.deck.Remaining() == 0 {
				return m, nil
			}
			out, err := m.deck.Reject()
			m.applyResult(out, err)
			return m, nil

		case key.Matches(msg, keys.Undo):
			if m.busy {
				return m, nil
			}
			out, err := m.deck.Undo()
			m.applyResult(out, err)
			return m, nil

		case key.Matches(msg, keys.Redo):
			if m.busy {
				return m, nil
			}
			out, err := m.deck.Redo()
			m.applyResult(out, err)
			return m, nil

		case key.Matches(msg, keys.Copy):
			if card, ok := m.deck.Top(); ok {
				if err := clipboard.WriteAll(card.Summary()); err != nil {
					m.setStatus("Copy failed: "+err.Error(), false, true)
				} else {
					m.setStatus("Copied: "+card.Summary(), true, false)
				}
			}
			return m, nil
		}
		return m, nil

	case actionResultMsg:
		m.busy = false
		m.applyResult(msg.msg, msg.err)
		return m, nil
	}

	return m, nil
}

func (m *model) applyResult(out string, err error) {
	if err != nil {
		var rej *deck.RejectedError
		if errors.As(err, &rej) {
			m.setStatus("Rejected: "+rej.Reason, false, true)
		} else {
			m.setStatus("Error: "+err.Error(), false, true)
		}
		return
	}
	m.setStatus(out, true, false)
}

func (m *model) setStatus(s string, ok, isErr bool) {
	m.status = s
	m.statusOK = ok
	m.statusErr = isErr
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	header := styleHeader.Render(fmt.Sprintf("mailswipe  |  %d card(s) left", m.deck.Remaining()))

	cardW := m.cardWidth()
	cardH := m.cardHeight()

	var panel string
	if card, ok := m.deck.Top(); ok {
		panel = styleCardBorder.
			Width(cardW).
			Height(cardH).
			Render(renderCard(card, cardW-2, cardH))
	} else {
		panel = styleCardBorder.
			Width(cardW).
			Height(cardH).
			Render(styleDone.Width(cardW - 2).Height(cardH).Render("All caught up.\n\nPress q to quit."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, panel, m.statusLine(), m.helpLine())
}

func (m model) cardWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width - 4
	if w > 90 {
		w = 90
	}
	if w < 30 {
		w = 30
	}
	return w
}

func (m model) cardHeight() int {
	if m.height <= 0 {
		return 16
	}
	// header (1) + status (1) + help (1) + borders (2)
	h := m.height - 5
	if h < 6 {
		h = 6
	}
	return h
}

func (m model) statusLine() string {
	switch {
	case m.statusErr:
		return styleStatusErr.Render(m.status)
	case m.statusOK:
		return styleStatusOK.Render(m.status)
	default:
		return styleStatusBar.Render(m.status)
	}
}

func (m model) helpLine() string {
	parts := []string{
		keys.Accept.Help().Key + " " + keys.Accept.Help().Desc,
		keys.Reject.Help().Key + " " + keys.Reject.Help().Desc,
	}
	if m.deck.CanUndo() {
		parts = append(parts, keys.Undo.Help().Key+" "+keys.Undo.Help().Desc)
	}
	if m.deck.CanRedo() {
		parts = append(parts, keys.Redo.Help().Key+" "+keys.Redo.Help().Desc)
	}
	parts = append(parts,
		keys.Copy.Help().Key+" "+keys.Copy.Help().Desc,
		keys.Quit.Help().Key+" "+keys.Quit.Help().Desc,
	)
	return styleStatusBar.Render(strings.Join(parts, " | "))
}

func acceptCmd(d *deck.Deck) tea.Cmd {
	return func() tea.Msg {
		out, err := d.Accept(context.Background())
		return actionResultMsg{msg: out, err: err}
	}
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/hintle/internal/model"
	"github.com/verte-zerg/hintle/internal/wizard"
)

const (
	settingWordLength = iota
	settingMaxGuesses
	settingCount
)

var selectedSetting = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)

// settingsForm holds pending game settings until they are applied.
type settingsForm struct {
	field      int
	wordLength int
	maxGuesses int
}

func (m *Model) openSettings() {
	m.settings = &settingsForm{
		wordLength: m.session.WordLength(),
		maxGuesses: m.session.MaxGuesses(),
	}
	m.input.Blur()
	m.clearError()
}

func (m *Model) closeSettings() {
	m.settings = nil
	if m.wizard.Step() == wizard.EnteringWord {
		m.input.Focus()
	}
}

func (m *Model) updateSettings(msg tea.KeyMsg) {
	f := m.settings
	switch msg.String() {
	case "up", "k", "shift+tab":
		f.field = (f.field + settingCount - 1) % settingCount
	case "down", "j", "tab":
		f.field = (f.field + 1) % settingCount
	case "left", "h", "-":
		f.adjust(-1)
	case "right", "l", "+", "=":
		f.adjust(1)
	case "esc":
		m.closeSettings()
	case "enter":
		m.applySettings(f.wordLength, f.maxGuesses)
	}
}

func (f *settingsForm) adjust(delta int) {
	switch f.field {
	case settingWordLength:
		f.wordLength = clamp(f.wordLength+delta, model.MinWordLength, model.MaxWordLength)
	case settingMaxGuesses:
		f.maxGuesses = clamp(f.maxGuesses+delta, model.MinMaxGuesses, model.MaxMaxGuesses)
	}
}

// applySettings records the current session and starts a new one with
// the given word length and guess limit.
func (m *Model) applySettings(wordLength, maxGuesses int) {
	m.recordSession()
	m.session.Reconfigure(wordLength, maxGuesses)
	m.config.WordLength = wordLength
	m.config.MaxGuesses = maxGuesses
	m.wizard.Reset(wordLength)
	m.input.CharLimit = wordLength
	m.input.Reset()
	m.cursor = 0
	m.recorded = false
	m.settings = nil
	m.input.Focus()
	m.clearError()
	m.status = fmt.Sprintf("New session: %d letters, %d guesses", wordLength, maxGuesses)
	if m.session.Corpus().Len() == 0 {
		m.status += fmt.Sprintf(" (no %d-letter words in the list)", wordLength)
	}
	m.refreshList()
}

func (m *Model) renderSettings() string {
	f := m.settings
	lines := []string{stepStyle.Render("Game settings")}
	fields := []string{
		fmt.Sprintf("Word length  < %2d >", f.wordLength),
		fmt.Sprintf("Max guesses  < %2d >", f.maxGuesses),
	}
	for i, field := range fields {
		if i == f.field {
			lines = append(lines, selectedSetting.Render("> "+field))
			continue
		}
		lines = append(lines, footerStyle.Render("  "+field))
	}
	lines = append(lines, footerStyle.Render("up/down: field  left/right: change  enter: save and restart  esc: cancel"))
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package tui provides the Bubble Tea solving interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/hintle/internal/guess"
	"github.com/verte-zerg/hintle/internal/model"
	"github.com/verte-zerg/hintle/internal/session"
	"github.com/verte-zerg/hintle/internal/solver"
	"github.com/verte-zerg/hintle/internal/wizard"
)

// Recorder stores finished sessions.
type Recorder interface {
	InsertSession(ctx context.Context, rec model.SessionRecord) (int64, error)
}

// Model implements the Bubble Tea solving UI.
type Model struct {
	config   model.Config
	session  *session.Session
	wizard   *wizard.Wizard
	recorder Recorder

	input    textinput.Model
	list     viewport.Model
	cursor   int
	recorded bool
	settings *settingsForm

	status string
	errMsg string

	width  int
	height int
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	wordStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	tileBase     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	correctTile  = tileBase.Background(lipgloss.Color("#038A0E"))
	presentTile  = tileBase.Background(lipgloss.Color("#CCA80A"))
	absentTile   = tileBase.Background(lipgloss.Color("#222222"))
	unknownKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	excludedKey  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	misplacedKey = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCA80A")).Bold(true)
	placedKey    = lipgloss.NewStyle().Foreground(lipgloss.Color("#03B312")).Bold(true)
)

// NewModel constructs a solving TUI model. recorder may be nil.
func NewModel(cfg model.Config, sess *session.Session, recorder Recorder) *Model {
	input := textinput.New()
	input.Prompt = "Guess: "
	input.CharLimit = sess.WordLength()
	input.Focus()

	m := &Model{
		config:   cfg,
		session:  sess,
		wizard:   wizard.New(sess.WordLength()),
		recorder: recorder,
		input:    input,
		list:     viewport.New(0, 0),
	}
	m.refreshList()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshList()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.recordSession()
			return m, tea.Quit
		}
		if m.settings != nil {
			m.updateSettings(msg)
			return m, nil
		}
		switch msg.Type {
		case tea.KeyCtrlR:
			m.resetSession()
			return m, nil
		case tea.KeyCtrlO:
			m.openSettings()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		if m.wizard.Step() == wizard.EnteringWord {
			return m.updateEntering(msg)
		}
		m.updateMarking(msg)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) updateEntering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if m.session.Full() || m.session.Solved() {
		m.setError(errors.New("no guesses left; press ctrl+r to start over"))
		return m, nil
	}
	if err := m.wizard.SetWord(m.input.Value()); err != nil {
		m.setError(err)
		return m, nil
	}
	if err := m.wizard.Next(); err != nil {
		m.setError(err)
		return m, nil
	}
	m.cursor = 0
	m.clearError()
	m.input.Blur()
	return m, nil
}

func (m *Model) updateMarking(msg tea.KeyMsg) {
	switch msg.String() {
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case " ":
		m.toggle(m.cursor)
	case "esc", "backspace":
		if err := m.wizard.Back(); err != nil {
			m.setError(err)
			return
		}
		m.clearError()
		if m.wizard.Step() == wizard.EnteringWord {
			m.input.Focus()
		}
	case "enter":
		if m.wizard.Step() == wizard.MarkingPresent {
			if err := m.wizard.Next(); err != nil {
				m.setError(err)
			}
			return
		}
		m.commit()
	default:
		if len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9' {
			pos := int(msg.Runes[0] - '1')
			if m.toggle(pos) {
				m.cursor = pos
			}
		}
	}
}

func (m *Model) moveCursor(delta int) {
	n := m.wizard.Width()
	if n == 0 {
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) toggle(pos int) bool {
	if err := m.wizard.Toggle(pos); err != nil {
		m.setError(err)
		return false
	}
	m.clearError()
	return true
}

// commit submits the marked row. The wizard keeps the row when the
// session rejects it.
func (m *Model) commit() {
	if m.wizard.Step() != wizard.MarkingCorrect {
		return
	}
	row := m.wizard.Row()
	if err := m.session.Submit(row); err != nil {
		m.setError(err)
		return
	}
	if _, err := m.wizard.Commit(); err != nil {
		m.setError(err)
		return
	}
	m.clearError()
	m.input.Reset()
	m.input.Focus()
	m.refreshList()
	count := len(m.session.Candidates())
	switch {
	case row.Solved():
		m.status = fmt.Sprintf("Solved in %d: %s", m.session.Ledger().Len(), row.Word())
	case count == 0:
		m.status = "No candidates remain"
	default:
		m.status = ""
	}
	log.Debug().Str("session", m.session.ID()).Str("row", row.String()).Int("candidates", count).Msg("guess submitted")
}

func (m *Model) resetSession() {
	m.recordSession()
	m.session.Reset()
	m.wizard.Reset(m.session.WordLength())
	m.input.Reset()
	m.input.Focus()
	m.cursor = 0
	m.recorded = false
	m.status = "New session"
	m.clearError()
	m.refreshList()
}

func (m *Model) recordSession() {
	if m.recorder == nil || m.recorded || m.session.Ledger().Len() == 0 {
		return
	}
	m.recorded = true
	rec := m.session.Record(time.Now())
	if _, err := m.recorder.InsertSession(context.Background(), rec); err != nil {
		log.Error().Err(err).Str("session", rec.UUID).Msg("failed to save session")
	}
}

func (m *Model) setError(err error) {
	m.errMsg = err.Error()
}

func (m *Model) clearError() {
	m.errMsg = ""
}

func (m *Model) refreshList() {
	words := m.session.Candidates()
	show := m.config.Show
	if show > 0 && len(words) > show {
		words = words[:show]
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.list.Width = width
	m.list.Height = m.listHeight()
	m.list.SetContent(layoutColumns(words, width))
	m.list.GotoTop()
}

func (m *Model) listHeight() int {
	if m.height <= 0 {
		return 10
	}
	used := 8 + m.session.Ledger().Len()
	if h := m.height - used; h > 1 {
		return h
	}
	return 1
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		titleStyle.Render("hintle"),
		m.renderRows(),
		m.renderEntry(),
		m.renderKeyboard(),
		m.renderCandidateHeader(),
		m.list.View(),
		m.renderFooter(),
	}
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderRows() string {
	rows := m.session.Rows()
	if len(rows) == 0 {
		return ""
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, renderTiles(row, -1))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderEntry() string {
	if m.settings != nil {
		return m.renderSettings()
	}
	step := m.wizard.Step()
	title := stepStyle.Render(step.String())
	if step == wizard.EnteringWord {
		if m.session.Full() || m.session.Solved() {
			return ""
		}
		return title + "\n" + m.input.View()
	}
	return title + "\n" + renderTiles(m.wizard.Row(), m.cursor)
}

func renderTiles(row guess.Row, cursor int) string {
	tiles := make([]string, len(row))
	for i, l := range row {
		style := absentTile
		switch l.Outcome {
		case guess.Correct:
			style = correctTile
		case guess.Present:
			style = presentTile
		}
		if i == cursor {
			style = style.Underline(true)
		}
		tiles[i] = style.Render(string(l.Char))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func (m *Model) renderKeyboard() string {
	if m.session.Ledger().Len() == 0 {
		return ""
	}
	summary := m.session.Summary()
	var b strings.Builder
	for r := 'A'; r <= 'Z'; r++ {
		style := unknownKey
		switch summary.State(r) {
		case solver.Excluded:
			style = excludedKey
		case solver.Misplaced:
			style = misplacedKey
		case solver.Placed:
			style = placedKey
		}
		b.WriteString(style.Render(string(r)))
	}
	return b.String() + "  " + footerStyle.Render(summary.Pattern())
}

func (m *Model) renderCandidateHeader() string {
	total := len(m.session.Candidates())
	shown := total
	if m.config.Show > 0 && shown > m.config.Show {
		shown = m.config.Show
	}
	if total == 0 {
		return wordStyle.Render("Possible words: none")
	}
	return wordStyle.Render(fmt.Sprintf("Possible words (showing %d of %d)", shown, total))
}

func (m *Model) renderFooter() string {
	segments := []string{}
	if remaining := m.session.Remaining(); remaining >= 0 {
		segments = append(segments, fmt.Sprintf("Guesses left %d", remaining))
	}
	switch {
	case m.settings != nil:
	case m.wizard.Step() == wizard.EnteringWord:
		segments = append(segments, "enter: next")
	case m.wizard.Step() == wizard.MarkingPresent:
		segments = append(segments, "space/1-9: mark  enter: next  esc: back")
	default:
		segments = append(segments, "space/1-9: mark  enter: done  esc: back")
	}
	segments = append(segments, "ctrl+o: settings  ctrl+r: reset  ctrl+c: quit")
	footer := footerStyle.Render(strings.Join(segments, "  "))
	if m.status != "" {
		footer = stepStyle.Render(m.status) + "\n" + footer
	}
	if m.errMsg != "" {
		footer = errorStyle.Render(m.errMsg) + "\n" + footer
	}
	return footer
}

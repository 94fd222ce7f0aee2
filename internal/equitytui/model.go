// Package equitytui is a Bubble Tea front-end over internal/equity: a row
// of text inputs for player descriptors and the board, re-solved live as
// the user edits them, mirroring the focus-cycling text-input layout of
// internal/tui.
package equitytui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerequity/internal/equity"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	equityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Model is the equity-tui Bubble Tea model: a board input followed by one
// input per player, re-solved on every keystroke.
type Model struct {
	logger     *log.Logger
	iterations uint32

	board   textinput.Model
	players []textinput.Model
	focused int // 0 = board, 1..len(players) = players[i-1]

	result   *equity.EquityResult
	solveErr error
	quitting bool
}

// New builds a Model seeded with n empty player inputs.
func New(n int, iterations uint32, logger *log.Logger) *Model {
	if n < 2 {
		n = 2
	}

	board := textinput.New()
	board.Placeholder = "board, e.g. Td7s8h"
	board.Prompt = "board  > "
	board.CharLimit = 14
	board.Width = 20

	players := make([]textinput.Model, n)
	for i := range players {
		ti := textinput.New()
		ti.Placeholder = "AcKd, Ac, TT+, AKs, or blank for unknown"
		ti.Prompt = fmt.Sprintf("p%d     > ", i+1)
		ti.CharLimit = 40
		ti.Width = 40
		players[i] = ti
	}
	players[0].Focus()

	return &Model{
		logger:     logger.WithPrefix("equitytui"),
		iterations: iterations,
		board:      board,
		players:    players,
		focused:    1,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.cycleFocus(1)
		case "shift+tab":
			m.cycleFocus(-1)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.board, cmd = m.board.Update(msg)
	cmds = append(cmds, cmd)
	for i := range m.players {
		m.players[i], cmd = m.players[i].Update(msg)
		cmds = append(cmds, cmd)
	}

	m.solve()

	return m, tea.Batch(cmds...)
}

func (m *Model) cycleFocus(delta int) {
	m.blurAll()
	n := len(m.players) + 1
	m.focused = ((m.focused+delta)%n + n) % n
	if m.focused == 0 {
		m.board.Focus()
	} else {
		m.players[m.focused-1].Focus()
	}
}

func (m *Model) blurAll() {
	m.board.Blur()
	for i := range m.players {
		m.players[i].Blur()
	}
}

func (m *Model) solve() {
	descriptors := make([]string, len(m.players))
	for i, p := range m.players {
		descriptors[i] = strings.TrimSpace(p.Value())
	}

	result, err := equity.Solve(descriptors, strings.TrimSpace(m.board.Value()), m.iterations,
		equity.WithLogger(m.logger))
	m.result = result
	m.solveErr = err
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(" equity ") + "\n\n")
	b.WriteString(m.board.View() + "\n")
	for _, p := range m.players {
		b.WriteString(p.View() + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.solveErr != nil:
		b.WriteString(errorStyle.Render(m.solveErr.Error()) + "\n")
	case m.result != nil:
		for i, eq := range m.result.Equities {
			label := fmt.Sprintf("p%d", i+1)
			b.WriteString(fmt.Sprintf("%s  %s\n", labelStyle.Render(label), equityStyle.Render(fmt.Sprintf("%.2f%%", eq))))
		}
		b.WriteString(infoStyle.Render(fmt.Sprintf("%s, %d samples", m.result.Mode, m.result.Samples)) + "\n")
	default:
		b.WriteString(infoStyle.Render("enter at least 2 players to solve") + "\n")
	}

	b.WriteString("\n" + infoStyle.Render("tab/shift+tab to switch fields, esc to quit"))

	return b.String()
}

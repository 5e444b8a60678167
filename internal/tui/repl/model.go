// ============================================================================
// summa - Sum Expression Parser
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive summa REPL
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/summa/foundation/core/i18n"
	mdwlog "github.com/msto63/summa/foundation/core/log"
	"github.com/msto63/summa/foundation/summa"
	"github.com/msto63/summa/internal/printer"
)

// Config holds the configuration for the REPL
type Config struct {
	Engine      *summa.Engine
	Messages    *i18n.Manager
	Logger      *mdwlog.Logger
	Prompt      string
	HistorySize int
}

// Model is the main Bubble Tea model
type Model struct {
	// Dimensions
	width, height int
	ready         bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Data
	entries     []Entry
	history     []string
	historyPos  int
	historySize int

	engine   *summa.Engine
	messages *i18n.Manager
	logger   *mdwlog.Logger
	printer  *printer.Printer
}

// NewModel creates a new REPL model
func NewModel(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}
	if cfg.Engine == nil {
		cfg.Engine = summa.New(summa.Options{Logger: cfg.Logger})
	}
	if cfg.Messages == nil {
		cfg.Messages = i18n.MustNew(i18n.Options{})
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = 100
	}

	input := textinput.New()
	input.Prompt = cfg.Prompt
	input.PromptStyle = PromptStyle
	input.Placeholder = cfg.Messages.T("repl.placeholder")
	input.CharLimit = cfg.Engine.MaxInputLength()
	input.Width = 60
	input.Focus()

	return Model{
		input:       input,
		engine:      cfg.Engine,
		messages:    cfg.Messages,
		logger:      cfg.Logger.WithField("component", "summa-repl"),
		printer:     printer.New(nil, true),
		historySize: cfg.HistorySize,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit

		case "enter":
			m.submit(m.input.Value())
			m.input.Reset()
			m.refresh()
			return m, nil

		case "esc":
			m.input.Reset()
			m.historyPos = len(m.history)
			return m, nil

		case "up":
			if m.historyPos > 0 {
				m.historyPos--
				m.input.SetValue(m.history[m.historyPos])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.historyPos < len(m.history)-1 {
				m.historyPos++
				m.input.SetValue(m.history[m.historyPos])
				m.input.CursorEnd()
			} else {
				m.historyPos = len(m.history)
				m.input.Reset()
			}
			return m, nil

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		viewportHeight := m.height - 7
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width-4, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = m.width - 6
		m.refresh()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit evaluates one line and records it in transcript and history
func (m *Model) submit(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	entry := Entry{Input: line}
	sum, result, err := m.engine.Evaluate(line)
	if err != nil {
		m.logger.Debug("evaluation failed", mdwlog.Err(err))
		entry.Failed = true
		entry.Message = m.messages.Localize(err)
	} else {
		entry.Expr = result.Expr
		entry.Sum = sum
	}
	m.entries = append(m.entries, entry)

	m.history = append(m.history, line)
	if len(m.history) > m.historySize {
		m.history = m.history[len(m.history)-m.historySize:]
	}
	m.historyPos = len(m.history)
}

// refresh re-renders the transcript into the viewport
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.transcript())
	m.viewport.GotoBottom()
}

func (m Model) transcript() string {
	if len(m.entries) == 0 {
		return EmptyStyle.Render(m.messages.T("repl.empty"))
	}

	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(PromptStyle.Render(m.input.Prompt))
		b.WriteString(InputLineStyle.Render(e.Input))
		b.WriteString("\n")

		if e.Failed {
			b.WriteString(printer.ErrorStyle.Render(e.Message))
			b.WriteString("\n")
			continue
		}
		b.WriteString(ResultStyle.Render(e.Expr.String()))
		b.WriteString("\n")
		b.WriteString(m.printer.FormatOutline(e.Expr))
		b.WriteString(printer.SumStyle.Render(m.messages.T("output.sum", map[string]interface{}{"sum": e.Sum})))
		b.WriteString("\n")
	}
	return b.String()
}

// Entries returns the evaluated lines
func (m Model) Entries() []Entry {
	return m.entries
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(LogoStyle.Render(m.messages.T("repl.title")))
	b.WriteString("  ")
	b.WriteString(HelpStyle.Render(m.messages.T("repl.help")))
	b.WriteString("\n")
	b.WriteString(PanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

// Run starts the REPL
func Run(cfg Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

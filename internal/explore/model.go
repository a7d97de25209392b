// ============================================================================
// fynk - Fynk language front end
// ============================================================================
//
// Package:     explore
// Description: Bubbletea model for the live explorer: source on the left,
//              tokens or AST of the current buffer on the right
// Author:      fynk authors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package explore

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fynk-lang/fynk/foundation/fynk"
	mdwast "github.com/fynk-lang/fynk/foundation/fynk/ast"
	"github.com/fynk-lang/fynk/internal/render"
)

// Mode selects what the output pane shows
type Mode int

const (
	ModeTree Mode = iota
	ModeTokens
	ModeJSON
	modeCount
)

func (v Mode) String() string {
	switch v {
	case ModeTree:
		return "tree"
	case ModeTokens:
		return "tokens"
	case ModeJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Model is the explorer's Bubbletea model
type Model struct {
	// State
	width  int
	height int
	ready  bool
	mode   Mode
	source string
	result *fynk.Result
	err    error

	// Components
	editor textarea.Model
	output viewport.Model

	engine *fynk.Engine
	file   string
	styles render.Styles
}

// New creates an explorer editing src. file labels diagnostics.
func New(engine *fynk.Engine, file, src string, styles render.Styles) Model {
	ta := textarea.New()
	ta.Placeholder = "x = 1 + 2;"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(20)
	ta.SetValue(src)
	ta.Focus()

	m := Model{
		editor: ta,
		output: viewport.New(60, 20),
		engine: engine,
		file:   file,
		styles: styles,
	}
	m.analyze()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlT:
			m.mode = (m.mode + 1) % modeCount
			m.refresh()
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
	}

	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)

	if m.editor.Value() != m.source {
		m.analyze()
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading explorer..."
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		FocusedPanelStyle.Render(m.editor.View()),
		PanelStyle.Render(m.output.View()),
	)

	var b strings.Builder
	b.WriteString(TitleStyle.Render("fynk explore") + "  " + HelpStyle.Render(m.file))
	b.WriteString("\n")
	b.WriteString(panes)
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("ctrl+t: switch view  pgup/pgdn: scroll output  esc: quit"))
	return b.String()
}

// Output returns the current content of the output pane
func (m Model) Output() string {
	return m.content()
}

// Result returns the outcome of the last analysis
func (m Model) Result() *fynk.Result {
	return m.result
}

func (m Model) renderStatusBar() string {
	var status string
	switch {
	case m.err != nil:
		status = StatusErrorStyle.Render("error: " + m.err.Error())
	case m.result != nil && !m.result.OK():
		status = StatusErrorStyle.Render(fmt.Sprintf("%d diagnostic(s)", len(m.result.Diagnostics)))
	default:
		status = StatusOKStyle.Render("ok")
	}

	tokens := 0
	if m.result != nil && m.result.Tokens != nil {
		tokens = m.result.Tokens.Len()
	}

	return StatusBarStyle.Render(fmt.Sprintf("view: %s | tokens: %d | %s", m.mode, tokens, status))
}

func (m *Model) resize() {
	// title, status bar, help and pane borders
	paneHeight := m.height - 5
	if paneHeight < 3 {
		paneHeight = 3
	}
	paneWidth := m.width/2 - 2
	if paneWidth < 10 {
		paneWidth = 10
	}

	m.editor.SetWidth(paneWidth)
	m.editor.SetHeight(paneHeight)
	m.output.Width = paneWidth
	m.output.Height = paneHeight
	m.refresh()
}

func (m *Model) analyze() {
	m.source = m.editor.Value()
	m.result, m.err = m.engine.Check(m.file, m.source)
	m.refresh()
}

func (m *Model) refresh() {
	m.output.SetContent(m.content())
}

func (m Model) content() string {
	if m.err != nil {
		return m.styles.Error.Render(m.err.Error())
	}
	if m.result == nil {
		return ""
	}

	var b strings.Builder
	for _, d := range m.result.Diagnostics {
		b.WriteString(render.Diagnostic(d, m.source, m.styles))
		b.WriteString("\n\n")
	}

	switch m.mode {
	case ModeTokens:
		if m.result.Tokens != nil {
			b.WriteString(render.TokenTable(m.result.Tokens.Tokens(), m.styles))
		}
	case ModeJSON:
		if m.result.Program != nil {
			var buf bytes.Buffer
			if err := render.WriteProgram(&buf, m.result.Program, render.FormatJSON); err != nil {
				b.WriteString(m.styles.Error.Render(err.Error()))
			}
			b.WriteString(buf.String())
		}
	default:
		if m.result.Program != nil {
			b.WriteString(mdwast.Format(m.result.Program))
		}
	}

	return b.String()
}

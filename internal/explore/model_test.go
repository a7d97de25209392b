package explore

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	mdwlog "github.com/fynk-lang/fynk/foundation/core/log"
	"github.com/fynk-lang/fynk/foundation/fynk"
	"github.com/fynk-lang/fynk/internal/render"
)

func newModel(src string) Model {
	engine := fynk.New(fynk.Options{Logger: mdwlog.Discard()})
	return New(engine, "scratch.fy", src, render.PlainStyles())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Expected Model, got %T", next)
	}
	return model
}

func TestExploreInitialAnalysis(t *testing.T) {
	m := newModel("x = 1;")

	if m.Result() == nil || !m.Result().OK() {
		t.Fatalf("Expected clean result, got %+v", m.Result())
	}
	if !strings.Contains(m.Output(), "AssignmentExpression @1:0") {
		t.Errorf("Expected tree output, got:\n%s", m.Output())
	}
}

func TestExploreViewBeforeResize(t *testing.T) {
	m := newModel("")
	if m.View() != "Loading explorer..." {
		t.Errorf("Expected loading view, got %q", m.View())
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !strings.Contains(m.View(), "view: tree") {
		t.Errorf("Expected status bar in view, got:\n%s", m.View())
	}
}

func TestExploreTypingReanalyzes(t *testing.T) {
	m := newModel("x = 1")
	if m.Result().OK() {
		t.Fatal("Expected missing semicolon to be diagnosed")
	}
	if !strings.Contains(m.Output(), "Expected SEMICOLON but got EOF") {
		t.Errorf("Expected diagnostic in output, got:\n%s", m.Output())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(";")})
	if !m.Result().OK() {
		t.Errorf("Expected clean result after typing, got %v", m.Result().Diagnostics)
	}
}

func TestExploreSwitchView(t *testing.T) {
	m := newModel("a != b;")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.mode != ModeTokens || !strings.Contains(m.Output(), "NOT_EQUAL") {
		t.Errorf("Expected token view, got %s:\n%s", m.mode, m.Output())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.mode != ModeJSON || !strings.Contains(m.Output(), `"kind": "InequalityExpression"`) {
		t.Errorf("Expected json view, got %s:\n%s", m.mode, m.Output())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.mode != ModeTree {
		t.Errorf("Expected view to wrap to tree, got %s", m.mode)
	}
}

func TestExploreQuit(t *testing.T) {
	m := newModel("")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Expected tea.QuitMsg, got %T", cmd())
	}
}

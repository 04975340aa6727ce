package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/problemgen"
)

func stripANSI(s string) string {
	return ansi.Strip(s)
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoice_NumberKeySubmits(t *testing.T) {
	mc := NewMultiChoice([]int{12, 7, 30}, 7)
	if mc.CorrectIndex != 1 {
		t.Fatalf("CorrectIndex = %d, want 1", mc.CorrectIndex)
	}

	mc, _ = mc.Update(keyPress('2'))
	if !mc.Submitted || mc.ChosenIndex != 1 || !mc.IsCorrect() {
		t.Errorf("after '2': %+v", mc)
	}

	mc, _ = mc.Update(keyPress('1'))
	if mc.ChosenIndex != 1 {
		t.Error("submitted selector should ignore further keys")
	}
}

func TestMultiChoice_ArrowsAndEnter(t *testing.T) {
	mc := NewMultiChoice([]int{4, 9}, 4)
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if mc.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", mc.Selected)
	}
	mc, _ = mc.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !mc.Submitted || mc.IsCorrect() {
		t.Errorf("after enter: %+v", mc)
	}
	if mc.View() == "" {
		t.Error("expected non-empty view")
	}
}

func TestMultiChoice_OutOfRangeDigit(t *testing.T) {
	mc := NewMultiChoice([]int{4, 9}, 9)
	mc, _ = mc.Update(keyPress('3'))
	if mc.Submitted {
		t.Error("digit beyond option count should be ignored")
	}
}

func TestMenu_Shortcut(t *testing.T) {
	fired := ""
	m := NewMenu([]MenuItem{
		{Label: "Practice", Shortcut: "p", Action: func() tea.Cmd { fired = "practice"; return nil }},
		{Label: "Stats", Shortcut: "s", Action: func() tea.Cmd { fired = "stats"; return nil }},
	})
	m, _ = m.Update(keyPress('s'))
	if fired != "stats" || m.Selected != 1 {
		t.Errorf("fired = %q, selected = %d", fired, m.Selected)
	}
	if got := m.Labels(); len(got) != 2 || got[0] != "Practice" {
		t.Errorf("Labels = %v", got)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B"},
		{Label: "C", Disabled: true},
		{Label: "D"},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("Selected = %d, want 3", m.Selected)
	}
}

func TestQuestionCard_Typed(t *testing.T) {
	q := problemgen.NewQuestion(6, facts.Multiplication, 7, problemgen.ModeTyped, nil)
	c := NewQuestionCard(&q)

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := c.Answered(); ok {
		t.Fatal("empty input should not submit")
	}

	c, _ = c.Update(keyPress('x'))
	c, _ = c.Update(keyPress('4'))
	c, _ = c.Update(keyPress('2'))
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	correct, ok := c.Answered()
	if !ok || !correct {
		t.Errorf("Answered = %v, %v; want correct", correct, ok)
	}
}

func TestQuestionCard_ChoiceAndReveal(t *testing.T) {
	q := problemgen.Question{A: 2, B: 3, Operation: facts.Addition, Answer: 5, Mode: problemgen.ModeMultipleChoice, Options: []int{5, 14}}
	c := NewQuestionCard(&q)

	c.Flash()
	if c.Phase() != RevealFlashing {
		t.Fatalf("Phase = %v, want flashing", c.Phase())
	}
	c.Reveal()
	if c.Phase() != RevealShown {
		t.Fatalf("Phase = %v, want shown", c.Phase())
	}
	if c.View(60) == "" {
		t.Error("expected non-empty view")
	}

	c, _ = c.Update(keyPress('2'))
	correct, ok := c.Answered()
	if !ok || correct {
		t.Errorf("Answered = %v, %v; want wrong", correct, ok)
	}
}

func TestScoreBar_Segments(t *testing.T) {
	bar := ScoreBar{Correct: 2, Missed: 1, Total: 4, Width: 20}
	out := bar.View()
	if !strings.HasSuffix(stripANSI(out), "  3/4") {
		t.Errorf("View = %q, want 3/4 count", stripANSI(out))
	}
	if got := lipgloss.Width(out); got != 20 {
		t.Errorf("width = %d, want 20", got)
	}
	if (ScoreBar{Width: 20}).View() != "" {
		t.Error("empty session should render nothing")
	}
}

func TestScoreBar_ClampsPassed(t *testing.T) {
	out := stripANSI(ScoreBar{Correct: 5, Missed: 2, Total: 5, Width: 16}.View())
	if !strings.HasSuffix(out, "5/5") {
		t.Errorf("View = %q, want 5/5", out)
	}
}

func TestArcadeButton_ShowsShortcut(t *testing.T) {
	out := stripANSI(ArcadeButton("STATS", "s", false, 22))
	if !strings.Contains(out, "STATS  [s]") {
		t.Errorf("button = %q", out)
	}
	if strings.Contains(stripANSI(ArcadeButton("QUIT", "", true, 22)), "[") {
		t.Error("no shortcut should render no brackets")
	}
}

func TestContentWidth_Clamps(t *testing.T) {
	if got := ContentWidth(10); got != 20 {
		t.Errorf("ContentWidth(10) = %d", got)
	}
	if got := ContentWidth(46); got != 40 {
		t.Errorf("ContentWidth(46) = %d", got)
	}
	if got := ContentWidth(200); got != 60 {
		t.Errorf("ContentWidth(200) = %d", got)
	}
}

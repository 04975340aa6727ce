package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathfacts/internal/problemgen"
	"github.com/abhisek/mathfacts/internal/ui/theme"
)

// RevealPhase tracks the auto-reveal of an unanswered question.
type RevealPhase int

const (
	RevealNone RevealPhase = iota
	RevealFlashing
	RevealShown
)

// QuestionCard presents one question, typed or multiple choice, and
// collects a single answer.
type QuestionCard struct {
	Question *problemgen.Question
	input    TextInput
	choice   MultiChoice
	answered bool
	correct  bool
	reveal   RevealPhase
}

// NewQuestionCard builds a card for q. Typed questions show the
// placeholder hint, if any, greyed out in the empty input.
func NewQuestionCard(q *problemgen.Question) QuestionCard {
	c := QuestionCard{Question: q}
	if q.Mode == problemgen.ModeMultipleChoice {
		c.choice = NewMultiChoice(q.Options, q.Answer)
	} else {
		c.input = NewTextInput(q.Placeholder, true, 4)
	}
	return c
}

// Init focuses the text input for typed questions.
func (c QuestionCard) Init() tea.Cmd {
	if c.isChoice() {
		return nil
	}
	return c.input.Init()
}

// Update feeds key presses to the input. Once an answer is submitted the
// card ignores further input.
func (c QuestionCard) Update(msg tea.Msg) (QuestionCard, tea.Cmd) {
	if c.answered {
		return c, nil
	}

	if c.isChoice() {
		c.choice, _ = c.choice.Update(msg)
		if c.choice.Submitted {
			c.answered = true
			c.correct = problemgen.CheckChoice(c.choice.ChosenIndex, c.Question)
		}
		return c, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		if c.input.Value() == "" {
			return c, nil
		}
		c.answered = true
		c.correct = problemgen.CheckAnswer(c.input.Value(), c.Question)
		c.input.Submit(c.correct)
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// Answered reports whether an answer was submitted and if it was right.
func (c QuestionCard) Answered() (correct, ok bool) {
	return c.correct, c.answered
}

// Flash starts the reveal: the prompt blinks before the answer shows.
func (c *QuestionCard) Flash() {
	if !c.answered && c.reveal == RevealNone {
		c.reveal = RevealFlashing
	}
}

// Reveal shows the answer. Typed questions display it beside the input;
// multiple-choice questions highlight the correct option.
func (c *QuestionCard) Reveal() {
	if !c.answered {
		c.reveal = RevealShown
	}
}

// Phase returns the current reveal phase.
func (c QuestionCard) Phase() RevealPhase {
	return c.reveal
}

func (c QuestionCard) isChoice() bool {
	return c.Question.Mode == problemgen.ModeMultipleChoice
}

// View renders the prompt and the answer widget centred in width.
func (c QuestionCard) View(width int) string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if c.reveal == RevealFlashing {
		promptStyle = promptStyle.Foreground(theme.Accent).Underline(true)
	}
	prompt := promptStyle.Render(c.Question.Text() + " = ?")

	var answer string
	if c.isChoice() {
		mc := c.choice
		if c.reveal == RevealShown {
			mc.Submitted = true
		}
		answer = mc.View()
	} else {
		answer = "Answer: " + c.input.View()
		if c.reveal == RevealShown {
			answer += "   " + theme.Hint.Render(fmt.Sprintf("(%d)", c.Question.Answer))
		}
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt) + "\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, answer)
}

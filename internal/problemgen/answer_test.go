package problemgen

import (
	"testing"

	"github.com/abhisek/mathfacts/internal/facts"
)

func TestCheckAnswer(t *testing.T) {
	q := NewQuestion(6, facts.Multiplication, 7, ModeTyped, nil)

	tests := []struct {
		input string
		want  bool
	}{
		{"42", true},
		{" 42 ", true},
		{"042", true},
		{"43", false},
		{"-42", false},
		{"", false},
		{"   ", false},
		{"forty-two", false},
		{"4 2", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, &q)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 6x7) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckChoice(t *testing.T) {
	q := Question{Answer: 12, Mode: ModeMultipleChoice, Options: []int{15, 12, 3}}

	tests := []struct {
		index int
		want  bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{-1, false},
		{3, false},
	}
	for _, tc := range tests {
		if got := CheckChoice(tc.index, &q); got != tc.want {
			t.Errorf("CheckChoice(%d) = %v, want %v", tc.index, got, tc.want)
		}
	}
}

package problemgen

import (
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's typed input against the answer.
// Whitespace is trimmed and leading zeros are ignored. Empty or
// non-numeric input is wrong.
func CheckAnswer(input string, q *Question) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return false
	}
	return n == q.Answer
}

// CheckChoice reports whether the option at index (0-based) is the answer.
func CheckChoice(index int, q *Question) bool {
	if index < 0 || index >= len(q.Options) {
		return false
	}
	return q.Options[index] == q.Answer
}

package quiz

// Config holds operand ranges for quiz assembly.
type Config struct {
	// TableMax is the largest second operand enumerated by Sequential
	// for multiplication.
	TableMax int

	// RandomMultiplierMax is the largest second operand Random draws for
	// multiplication.
	RandomMultiplierMax int

	// AddSubMax bounds both operands for addition and subtraction.
	AddSubMax int
}

// DefaultConfig returns the standard ranges.
func DefaultConfig() Config {
	return Config{
		TableMax:            12,
		RandomMultiplierMax: 10,
		AddSubMax:           12,
	}
}

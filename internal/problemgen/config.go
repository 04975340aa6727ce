package problemgen

// Config controls operand ranges and validation for the Generator.
type Config struct {
	// TableMultiplierMax is the largest second operand in tables mode.
	TableMultiplierMax int

	// SingleDigitMax is the largest operand in single-digit mode.
	SingleDigitMax int

	// Validators run on every generated question, in order; the first
	// failure is returned as an error.
	Validators []Validator
}

// DefaultConfig returns the standard ranges (multiplier 1..12, single
// digits 1..9) and validator chain.
func DefaultConfig() Config {
	return Config{
		TableMultiplierMax: 12,
		SingleDigitMax:     9,
		Validators:         DefaultValidators(),
	}
}

package passmeterview

// Band is a discrete strength level derived from a score.
type Band int

const (
	// BandNone is used for the empty password.
	BandNone Band = iota
	BandVeryWeak
	BandWeak
	BandFair
	BandGood
	BandStrong
	BandVeryStrong
)

// BandFor maps score to a band using half-open intervals of width one:
// [0,1) is BandVeryWeak and anything from 5 upwards is BandVeryStrong.
func BandFor(score float64) Band {
	switch {
	case score < 1:
		return BandVeryWeak
	case score < 2:
		return BandWeak
	case score < 3:
		return BandFair
	case score < 4:
		return BandGood
	case score < 5:
		return BandStrong
	default:
		return BandVeryStrong
	}
}

// Label returns the short name of b, e.g. "Very Weak".
func (b Band) Label() string {
	switch b {
	case BandVeryWeak:
		return "Very Weak"
	case BandWeak:
		return "Weak"
	case BandFair:
		return "Fair"
	case BandGood:
		return "Good"
	case BandStrong:
		return "Strong"
	case BandVeryStrong:
		return "Very Strong"
	case BandNone:
	}

	return ""
}

// Message returns the verdict shown next to the label.
func (b Band) Message() string {
	switch b {
	case BandVeryWeak:
		return "Very weak - easily guessed"
	case BandWeak:
		return "Weak - add more complexity"
	case BandFair:
		return "Fair - could be stronger"
	case BandGood:
		return "Good - decent protection"
	case BandStrong:
		return "Strong - well protected"
	case BandVeryStrong:
		return "Very strong - excellent protection"
	case BandNone:
	}

	return ""
}

// Class returns a stable, style-friendly identifier of b, e.g. "very-weak".
// BandNone has no class.
func (b Band) Class() string {
	switch b {
	case BandVeryWeak:
		return "very-weak"
	case BandWeak:
		return "weak"
	case BandFair:
		return "fair"
	case BandGood:
		return "good"
	case BandStrong:
		return "strong"
	case BandVeryStrong:
		return "very-strong"
	case BandNone:
	}

	return ""
}

func (b Band) String() string {
	if b == BandNone {
		return "none"
	}

	return b.Class()
}

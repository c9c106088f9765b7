package passmeterscore

import (
	"go.inout.gg/passmeter/internal/sliceutil"
)

// Criterion is one independently evaluated check contributing to the base score.
type Criterion int

const (
	CriterionLength Criterion = iota
	CriterionLowercase
	CriterionUppercase
	CriterionNumber
	CriterionSpecial
	CriterionSequence
)

//nolint:gochecknoglobals
var criteria = []Criterion{
	CriterionLength,
	CriterionLowercase,
	CriterionUppercase,
	CriterionNumber,
	CriterionSpecial,
	CriterionSequence,
}

// Criteria returns all criteria in their display order.
func Criteria() []Criterion {
	return append([]Criterion(nil), criteria...)
}

func (c Criterion) String() string {
	switch c {
	case CriterionLength:
		return "length"
	case CriterionLowercase:
		return "lowercase"
	case CriterionUppercase:
		return "uppercase"
	case CriterionNumber:
		return "number"
	case CriterionSpecial:
		return "special"
	case CriterionSequence:
		return "sequence"
	}

	return "unknown"
}

// Description returns a short human readable requirement for c.
func (c Criterion) Description() string {
	switch c {
	case CriterionLength:
		return "At least 8 characters"
	case CriterionLowercase:
		return "Lowercase letter (a-z)"
	case CriterionUppercase:
		return "Uppercase letter (A-Z)"
	case CriterionNumber:
		return "Number (0-9)"
	case CriterionSpecial:
		return "Special character (!@#$%^&*...)"
	case CriterionSequence:
		return "No common sequences"
	}

	return ""
}

// Checks holds the outcome of every criterion.
type Checks struct {
	Length    bool `json:"length"`
	Lowercase bool `json:"lowercase"`
	Uppercase bool `json:"uppercase"`
	Number    bool `json:"number"`
	Special   bool `json:"special"`

	// Sequence is true when the password contains none of the common sequences.
	Sequence bool `json:"sequence"`
}

// Met reports whether criterion c is satisfied.
func (c Checks) Met(criterion Criterion) bool {
	switch criterion {
	case CriterionLength:
		return c.Length
	case CriterionLowercase:
		return c.Lowercase
	case CriterionUppercase:
		return c.Uppercase
	case CriterionNumber:
		return c.Number
	case CriterionSpecial:
		return c.Special
	case CriterionSequence:
		return c.Sequence
	}

	return false
}

// Count returns the number of satisfied criteria.
func (c Checks) Count() int {
	return sliceutil.Count(criteria, c.Met)
}

// MetCriteria returns the satisfied criteria in display order.
func (c Checks) MetCriteria() []Criterion {
	return sliceutil.Filter(criteria, c.Met)
}

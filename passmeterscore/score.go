package passmeterscore

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MaxScore is the upper bound of Result.Score.
	MaxScore = 6.0

	// MinLength is the length required by CriterionLength.
	MinLength = 8

	lengthBonusMin      = 12
	lengthBonusExtraMin = 16
	bonus               = 0.5

	// varietyRatio is the share of distinct characters required for the
	// variety bonus.
	varietyRatio = 0.7
)

// SpecialChars is the set of characters satisfying CriterionSpecial.
const SpecialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// Result is the outcome of a single evaluation.
type Result struct {
	// Score is in the closed interval [0, MaxScore].
	Score float64 `json:"score"`

	Checks Checks `json:"checks"`

	// Length is the number of Unicode code points in the password.
	Length int `json:"length"`
}

// Evaluate scores password.
//
// Only ASCII letters, digits and SpecialChars count towards the character
// class criteria. Length and distinctness are measured in code points.
// The empty password satisfies nothing and scores zero.
func Evaluate(password string) Result {
	if password == "" {
		return Result{}
	}

	runes := []rune(password)
	length := len(runes)

	checks := Checks{
		Length:    length >= MinLength,
		Lowercase: containsRange(runes, 'a', 'z'),
		Uppercase: containsRange(runes, 'A', 'Z'),
		Number:    containsRange(runes, '0', '9'),
		Special:   strings.ContainsAny(password, SpecialChars),
		Sequence:  !HasCommonSequence(lower(password)),
	}

	score := float64(checks.Count())

	if length >= lengthBonusMin {
		score += bonus
	}

	if length >= lengthBonusExtraMin {
		score += bonus
	}

	if float64(distinct(runes)) >= float64(length)*varietyRatio {
		score += bonus
	}

	return Result{
		Score:  min(score, MaxScore),
		Checks: checks,
		Length: length,
	}
}

func containsRange(runes []rune, lo, hi rune) bool {
	for _, r := range runes {
		if r >= lo && r <= hi {
			return true
		}
	}

	return false
}

func distinct(runes []rune) int {
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		seen[r] = struct{}{}
	}

	return len(seen)
}

// lower applies full Unicode lowercasing. A Caser is not safe for
// concurrent use, so one is created per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

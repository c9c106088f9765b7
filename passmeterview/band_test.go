package passmeterview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.inout.gg/passmeter/passmeterview"
)

func TestBandFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score    float64
		expected passmeterview.Band
	}{
		{0, passmeterview.BandVeryWeak},
		{0.5, passmeterview.BandVeryWeak},
		{1, passmeterview.BandWeak},
		{1.5, passmeterview.BandWeak},
		{2, passmeterview.BandFair},
		{2.5, passmeterview.BandFair},
		{3, passmeterview.BandGood},
		{3.5, passmeterview.BandGood},
		{4, passmeterview.BandStrong},
		{4.5, passmeterview.BandStrong},
		{5, passmeterview.BandVeryStrong},
		{5.5, passmeterview.BandVeryStrong},
		{6, passmeterview.BandVeryStrong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, passmeterview.BandFor(tt.score), "score %v", tt.score)
	}
}

func TestBandText(t *testing.T) {
	t.Parallel()

	t.Run("bands should have label, message and class", func(t *testing.T) {
		t.Parallel()

		expected := map[passmeterview.Band][3]string{
			passmeterview.BandVeryWeak:   {"Very Weak", "Very weak - easily guessed", "very-weak"},
			passmeterview.BandWeak:       {"Weak", "Weak - add more complexity", "weak"},
			passmeterview.BandFair:       {"Fair", "Fair - could be stronger", "fair"},
			passmeterview.BandGood:       {"Good", "Good - decent protection", "good"},
			passmeterview.BandStrong:     {"Strong", "Strong - well protected", "strong"},
			passmeterview.BandVeryStrong: {"Very Strong", "Very strong - excellent protection", "very-strong"},
		}

		for band, text := range expected {
			assert.Equal(t, text[0], band.Label())
			assert.Equal(t, text[1], band.Message())
			assert.Equal(t, text[2], band.Class())
			assert.Equal(t, text[2], band.String())
		}
	})

	t.Run("BandNone should be blank", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, passmeterview.BandNone.Label())
		assert.Empty(t, passmeterview.BandNone.Message())
		assert.Empty(t, passmeterview.BandNone.Class())
		assert.Equal(t, "none", passmeterview.BandNone.String())
	})
}

package passmeterscore

import (
	"strings"

	"go.inout.gg/passmeter/internal/sliceutil"
)

// commonSequences lists lowercase substrings considered weak: numeric,
// alphabet and keyboard-row runs followed by common weak passwords.
//
// "fgh" appears in both the alphabet and the keyboard row; membership
// is existential so the duplicate is harmless.
//
//nolint:gochecknoglobals
var commonSequences = []string{
	"123", "234", "345", "456", "567", "678", "789", "890",
	"abc", "bcd", "cde", "def", "efg", "fgh", "ghi", "hij",
	"qwe", "wer", "ert", "rty", "tyu", "yui", "uio", "iop",
	"asd", "sdf", "dfg", "fgh", "ghj", "hjk", "jkl",
	"zxc", "xcv", "cvb", "vbn", "bnm",
	"password", "pass", "1234", "12345", "123456", "qwerty",
}

// CommonSequences returns a copy of the common sequence table.
func CommonSequences() []string {
	return append([]string(nil), commonSequences...)
}

// HasCommonSequence reports whether lowered contains any common sequence.
//
// The caller is expected to lowercase the input.
func HasCommonSequence(lowered string) bool {
	return sliceutil.Any(commonSequences, func(seq string) bool {
		return strings.Contains(lowered, seq)
	})
}

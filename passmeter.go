// Package passmeter is an interactive password strength meter.
//
// The scoring lives in passmeterscore, the mapping of a score to what
// the user sees lives in passmeterview and passmetertui wires both to a
// terminal input.
package passmeter

import (
	"errors"
	"log/slog"
)

var ErrInvalidConfig = errors.New("passmeter: invalid configuration")

// DefaultLogger is the logger used when no logger is configured.
//
//nolint:gochecknoglobals
var DefaultLogger = slog.Default()

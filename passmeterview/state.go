package passmeterview

import (
	"go.inout.gg/passmeter/internal/sliceutil"
	"go.inout.gg/passmeter/passmeterscore"
)

// EmptyText is shown while no password has been entered.
const EmptyText = "Enter a password to check its strength"

// CriterionState is the display state of a single criterion.
type CriterionState struct {
	Criterion   passmeterscore.Criterion
	Description string
	Met         bool
}

// State is everything a Renderer needs to draw the meter.
type State struct {
	// Empty is set when no password has been entered.
	Empty bool

	// Percent is the bar fill in [0, 100].
	Percent float64

	Band Band
	Text string

	// Criteria holds every criterion in display order.
	Criteria []CriterionState

	// Shake requests the weak password feedback.
	Shake bool
}

// NewState maps result to a display state.
func NewState(result passmeterscore.Result) State {
	state := State{
		Criteria: sliceutil.Map(
			passmeterscore.Criteria(),
			func(c passmeterscore.Criterion) CriterionState {
				return CriterionState{
					Criterion:   c,
					Description: c.Description(),
					Met:         result.Checks.Met(c),
				}
			},
		),
	}

	if result.Length == 0 {
		state.Empty = true
		state.Band = BandNone
		state.Text = EmptyText

		return state
	}

	band := BandFor(result.Score)

	state.Percent = result.Score / passmeterscore.MaxScore * 100
	state.Band = band
	state.Text = band.Label() + " - " + band.Message()
	state.Shake = result.Score < 1

	return state
}

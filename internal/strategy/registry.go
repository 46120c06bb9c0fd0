package strategy

import (
	"fmt"
	"io"
	"os"
)

// Policy names accepted by the registry
const (
	ActionBasic  = "basic"
	ActionCutoff = "cutoff"
	ActionHuman  = "human"

	BettingFlat = "flat"
	BettingHiLo = "hilo"
)

// ActionSpec describes an action policy by name
type ActionSpec struct {
	Name      string
	Cutoff    int
	Surrender bool

	// In and Out back the human policy; they default to stdin/stdout.
	In  io.Reader
	Out io.Writer
}

// BettingSpec describes a betting policy by name
type BettingSpec struct {
	Name     string
	Bet      float64
	Unit     float64
	HoleCard string
}

// NewActionPolicy builds the action policy named by spec
func NewActionPolicy(spec ActionSpec) (ActionPolicy, error) {
	switch spec.Name {
	case ActionBasic, "optimal":
		var opts []BasicOption
		if spec.Surrender {
			opts = append(opts, WithLateSurrender())
		}
		return NewBasicStrategy(opts...), nil
	case ActionCutoff, "simple":
		return NewCutoff(spec.Cutoff), nil
	case ActionHuman:
		in, out := spec.In, spec.Out
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		return NewHuman(in, out), nil
	default:
		return nil, fmt.Errorf("unknown action policy %q", spec.Name)
	}
}

// NewBettingPolicy builds the betting policy named by spec. Each call
// returns fresh state, so counting policies are never shared between seats.
func NewBettingPolicy(spec BettingSpec) (BettingPolicy, error) {
	switch spec.Name {
	case BettingFlat:
		return NewFlat(spec.Bet), nil
	case BettingHiLo:
		mode, err := ParseHoleCardMode(spec.HoleCard)
		if err != nil {
			return nil, err
		}
		return NewHiLo(spec.Bet, spec.Unit, mode), nil
	default:
		return nil, fmt.Errorf("unknown betting policy %q", spec.Name)
	}
}

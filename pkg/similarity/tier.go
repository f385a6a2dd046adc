package similarity

import (
	"go.llib.dev/frameless/pkg/enum"
	"go.llib.dev/frameless/pkg/errorkit"
)

// Tier tells how strongly a mismatch on a field caps the classification result.
type Tier int

const (
	// Gate fields veto everything: a mismatch means CompletelyDifferent.
	Gate Tier = iota + 1
	// Tier1 mismatch caps the result at SlightlySimilar.
	Tier1
	// Tier2 mismatch caps the result at AlmostTheSame.
	Tier2
	// Tier3 fields only add to the match count.
	Tier3
)

const ErrInvalidTier errorkit.Error = "similarity: invalid tier"

var _ = enum.Register[Tier](Gate, Tier1, Tier2, Tier3)

func (t Tier) String() string {
	switch t {
	case Gate:
		return "gate"
	case Tier1:
		return "tier-1"
	case Tier2:
		return "tier-2"
	case Tier3:
		return "tier-3"
	default:
		return "unknown"
	}
}

// Validate checks t against the registered tiers.
func (t Tier) Validate() error {
	if err := enum.Validate[Tier](t); err != nil {
		return ErrInvalidTier.Wrap(err)
	}
	return nil
}

// Tiers returns every Tier from the strongest to the weakest.
func Tiers() []Tier {
	return enum.Values[Tier]()
}

// Ceiling returns the Level a mismatch on a field of this tier short-circuits to.
// The boolean is false when a mismatch does not short-circuit.
func (t Tier) Ceiling() (Level, bool) {
	switch t {
	case Gate:
		return CompletelyDifferent, true
	case Tier1:
		return SlightlySimilar, true
	case Tier2:
		return AlmostTheSame, true
	default:
		return CompletelyDifferent, false
	}
}

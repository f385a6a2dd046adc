package similarity

import (
	"go.llib.dev/frameless/pkg/compare"
	"go.llib.dev/frameless/pkg/enum"
	"go.llib.dev/frameless/pkg/errorkit"
)

// Level is the ordinal outcome of a classification.
// Levels are ordered from the least to the most similar,
// so plain integer comparison between them is meaningful.
type Level int

const (
	CompletelyDifferent Level = iota
	SlightlySimilar
	AlmostTheSame
	ExactlyTheSame
)

const ErrInvalidLevel errorkit.Error = "similarity: invalid level"

var _ = enum.Register[Level](
	CompletelyDifferent,
	SlightlySimilar,
	AlmostTheSame,
	ExactlyTheSame,
)

var levelNames = map[Level]string{
	CompletelyDifferent: "completely_different",
	SlightlySimilar:     "slightly_similar",
	AlmostTheSame:       "almost_the_same",
	ExactlyTheSame:      "exactly_the_same",
}

// Levels returns every Level from the least to the most similar.
func Levels() []Level {
	return enum.Values[Level]()
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// Validate checks l against the registered levels.
func (l Level) Validate() error {
	if err := enum.Validate[Level](l); err != nil {
		return ErrInvalidLevel.Wrap(err)
	}
	return nil
}

// Compare returns -1 when l is less similar than oth, +1 when it is more similar, and 0 when they are the same.
func (l Level) Compare(oth Level) int {
	return compare.Numbers(int(l), int(oth))
}

func (l Level) MarshalText() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// ParseLevel accepts the names produced by Level.String.
func ParseLevel(name string) (Level, error) {
	for lvl, n := range levelNames {
		if n == name {
			return lvl, nil
		}
	}
	return CompletelyDifferent, ErrInvalidLevel.F("unknown level name: %q", name)
}

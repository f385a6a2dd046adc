package similarity

import (
	"go.llib.dev/frameless/pkg/errorkit"
)

// Match count thresholds of the default bucket table.
const (
	SlightlySimilarMin = 1
	SlightlySimilarMax = 4
	AlmostTheSameMin   = 5
	AlmostTheSameMax   = 7
	ExactlyTheSameMin  = 8
	ExactlyTheSameMax  = 9
)

const ErrInvalidBucket errorkit.Error = "similarity: invalid bucket"

// Bucket maps an inclusive match count range to a Level.
type Bucket struct {
	Min   int
	Max   int
	Level Level
}

// Contains reports whether matches falls into the inclusive range of the bucket.
func (b Bucket) Contains(matches int) bool {
	return b.Min <= matches && matches <= b.Max
}

// Buckets is the final refinement step of a classification,
// applied only after every short-circuit check has passed.
type Buckets []Bucket

// DefaultBuckets returns the 1-4, 5-7, 8-9 table.
func DefaultBuckets() Buckets {
	return Buckets{
		{Min: SlightlySimilarMin, Max: SlightlySimilarMax, Level: SlightlySimilar},
		{Min: AlmostTheSameMin, Max: AlmostTheSameMax, Level: AlmostTheSame},
		{Min: ExactlyTheSameMin, Max: ExactlyTheSameMax, Level: ExactlyTheSame},
	}
}

// LevelOf returns the Level of the first bucket containing matches.
// Counts outside every bucket fall back to CompletelyDifferent.
func (bs Buckets) LevelOf(matches int) Level {
	for _, b := range bs {
		if b.Contains(matches) {
			return b.Level
		}
	}
	return CompletelyDifferent
}

// Validate rejects inverted, negative or overlapping ranges and unknown levels.
func (bs Buckets) Validate() error {
	var errs []error
	for i, b := range bs {
		if b.Max < b.Min {
			errs = append(errs, ErrInvalidBucket.F("bucket #%d has a min (%d) greater than its max (%d)", i, b.Min, b.Max))
		}
		if b.Min < 0 {
			errs = append(errs, ErrInvalidBucket.F("bucket #%d has a negative min (%d)", i, b.Min))
		}
		if err := b.Level.Validate(); err != nil {
			errs = append(errs, ErrInvalidBucket.Wrap(err))
		}
		for j := 0; j < i; j++ {
			if bs[j].Min <= b.Max && b.Min <= bs[j].Max {
				errs = append(errs, ErrInvalidBucket.F("bucket #%d overlaps with bucket #%d", i, j))
			}
		}
	}
	return errorkit.Merge(errs...)
}

package similarity

import (
	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrNoChecks     errorkit.Error = "similarity: classifier has no checks"
	ErrInvalidCheck errorkit.Error = "similarity: invalid check"
)

// Classifier compares two records field by field.
//
// Checks run in order. Every equal field increments the match count.
// A mismatch on a field whose Tier has a ceiling returns that ceiling immediately,
// and the remaining checks are never evaluated.
// When every check ran, the match count is mapped to a Level through Buckets.
//
// A Classifier holds no state between calls and is safe for concurrent use.
type Classifier[R any] struct {
	Checks []Check[R]
	// Buckets maps the final match count to a Level.
	// When empty, DefaultBuckets is used.
	Buckets Buckets
}

// Verdict is the explained outcome of a classification.
type Verdict struct {
	Level Level
	// Matches is the number of equal fields seen before the classification ended.
	Matches int
	// DecidedBy is the field whose mismatch short-circuited the classification.
	// It is empty when the bucket table decided the Level.
	DecidedBy string
	// Mismatches lists the compared fields that differed, in check order.
	Mismatches []string
}

// ShortCircuited reports whether a tiered mismatch ended the classification early.
func (v Verdict) ShortCircuited() bool {
	return v.DecidedBy != ""
}

// Classify returns the Level of similarity between a and b.
func (c Classifier[R]) Classify(a, b R) Level {
	return c.Explain(a, b).Level
}

// Explain classifies a and b, and reports how the Level was reached.
func (c Classifier[R]) Explain(a, b R) Verdict {
	var v Verdict
	for _, check := range c.Checks {
		if check.Equal(a, b) {
			v.Matches++
			continue
		}
		v.Mismatches = append(v.Mismatches, check.Field)
		if ceiling, ok := check.Tier.Ceiling(); ok {
			v.Level = ceiling
			v.DecidedBy = check.Field
			return v
		}
	}
	v.Level = c.buckets().LevelOf(v.Matches)
	return v
}

func (c Classifier[R]) buckets() Buckets {
	if len(c.Buckets) == 0 {
		return DefaultBuckets()
	}
	return c.Buckets
}

// Validate reports every configuration problem of the checks and the bucket table at once.
func (c Classifier[R]) Validate() error {
	if len(c.Checks) == 0 {
		return ErrNoChecks
	}
	var (
		errs  []error
		names = make(map[string]int, len(c.Checks))
	)
	for i, check := range c.Checks {
		if check.Field == "" {
			errs = append(errs, ErrInvalidCheck.F("check #%d has no field name", i))
		} else if j, ok := names[check.Field]; ok {
			errs = append(errs, ErrInvalidCheck.F("check #%d repeats the %q field of check #%d", i, check.Field, j))
		} else {
			names[check.Field] = i
		}
		if check.Equal == nil {
			errs = append(errs, ErrInvalidCheck.F("check #%d (%s) has no equality func", i, check.Field))
		}
		if err := check.Tier.Validate(); err != nil {
			errs = append(errs, ErrInvalidCheck.Wrap(err))
		}
	}
	if err := c.Buckets.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errorkit.Merge(errs...)
}

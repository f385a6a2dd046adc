package similarity

// Check compares a single field of two records.
type Check[R any] struct {
	// Field names the compared field in a Verdict.
	Field string
	Tier  Tier
	// Equal reports whether the field holds the same value in both records.
	// It must be symmetric for the classification to be symmetric.
	Equal func(a, b R) bool
}

// Field builds a Check that compares the value returned by get with ==.
func Field[R any, T comparable](name string, tier Tier, get func(R) T) Check[R] {
	return Check[R]{
		Field: name,
		Tier:  tier,
		Equal: func(a, b R) bool { return get(a) == get(b) },
	}
}

// FieldFunc builds a Check that compares the value returned by get with eq.
// Use it for field types whose equality is not plain ==, like optional values.
func FieldFunc[R, T any](name string, tier Tier, get func(R) T, eq func(a, b T) bool) Check[R] {
	return Check[R]{
		Field: name,
		Tier:  tier,
		Equal: func(a, b R) bool { return eq(get(a), get(b)) },
	}
}

package address

import (
	"similarity/pkg/optional"
	"similarity/pkg/similarity"
)

// Field names as they appear in a similarity.Verdict.
const (
	FieldCountry        = "country"
	FieldState          = "state"
	FieldCity           = "city"
	FieldPostcode       = "postcode"
	FieldArea           = "area"
	FieldLandmark       = "landmark"
	FieldStreetName     = "streetName"
	FieldBuildingName   = "buildingName"
	FieldBuildingNumber = "buildingNumber"
)

// NewClassifier returns the address classifier.
//
// The check order is part of the contract.
// Postcode is compared between the tier-1 and tier-2 fields,
// so a postcode mismatch is still counted when a later tier-2 field short-circuits.
func NewClassifier() similarity.Classifier[Address] {
	return similarity.Classifier[Address]{
		Checks: []similarity.Check[Address]{
			similarity.Field(FieldCountry, similarity.Gate, func(a Address) string { return a.Country }),
			similarity.Field(FieldState, similarity.Tier1, func(a Address) string { return a.State }),
			similarity.Field(FieldCity, similarity.Tier1, func(a Address) string { return a.City }),
			similarity.Field(FieldPostcode, similarity.Tier3, func(a Address) string { return a.Postcode }),
			similarity.Field(FieldArea, similarity.Tier2, func(a Address) string { return a.Area }),
			similarity.Field(FieldLandmark, similarity.Tier2, func(a Address) string { return a.Landmark }),
			similarity.Field(FieldStreetName, similarity.Tier2, func(a Address) string { return a.StreetName }),
			similarity.FieldFunc(FieldBuildingName, similarity.Tier3,
				func(a Address) optional.Value[string] { return a.BuildingName },
				optional.Equal[string]),
			similarity.Field(FieldBuildingNumber, similarity.Tier3, func(a Address) int { return a.BuildingNumber }),
		},
		Buckets: similarity.DefaultBuckets(),
	}
}

var classifier = NewClassifier()

// Classify tells how similar two addresses are.
func Classify(a, b Address) similarity.Level {
	return classifier.Classify(a, b)
}

// Explain is Classify with the reasoning behind the Level.
func Explain(a, b Address) similarity.Verdict {
	return classifier.Explain(a, b)
}

// SimilarityTo is a method form of Classify.
func (a Address) SimilarityTo(oth Address) similarity.Level {
	return Classify(a, oth)
}

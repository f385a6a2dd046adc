// Package similarity classifies how alike two structured records are.
//
// A Classifier walks an ordered list of field checks.
// Each check belongs to a Tier, and the tier decides what a mismatch means:
//
//	Gate   mismatch -> CompletelyDifferent, stop
//	Tier1  mismatch -> SlightlySimilar, stop
//	Tier2  mismatch -> AlmostTheSame, stop
//	Tier3  mismatch -> keep going
//
// When no check stopped the walk, the number of equal fields is looked up in the Buckets table.
// The tiering and the bucket thresholds are plain data,
// so tuning them never touches the control flow.
package similarity

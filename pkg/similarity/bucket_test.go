package similarity_test

import (
	"testing"

	"go.llib.dev/testcase/assert"

	"similarity/pkg/similarity"
)

func TestDefaultBuckets_LevelOf(t *testing.T) {
	buckets := similarity.DefaultBuckets()

	for matches, exp := range map[int]similarity.Level{
		-1: similarity.CompletelyDifferent,
		0:  similarity.CompletelyDifferent,
		1:  similarity.SlightlySimilar,
		2:  similarity.SlightlySimilar,
		4:  similarity.SlightlySimilar,
		5:  similarity.AlmostTheSame,
		6:  similarity.AlmostTheSame,
		7:  similarity.AlmostTheSame,
		8:  similarity.ExactlyTheSame,
		9:  similarity.ExactlyTheSame,
		10: similarity.CompletelyDifferent,
	} {
		assert.Equal(t, exp, buckets.LevelOf(matches))
	}
}

func TestBucket_Contains(t *testing.T) {
	b := similarity.Bucket{Min: 5, Max: 7, Level: similarity.AlmostTheSame}
	assert.False(t, b.Contains(4))
	assert.True(t, b.Contains(5))
	assert.True(t, b.Contains(7))
	assert.False(t, b.Contains(8))
}

func TestDefaultBuckets_isValid(t *testing.T) {
	assert.NoError(t, similarity.DefaultBuckets().Validate())
}

func TestDefaultBuckets_returnsIndependentCopies(t *testing.T) {
	a := similarity.DefaultBuckets()
	a[0].Level = similarity.ExactlyTheSame
	assert.Equal(t, similarity.SlightlySimilar, similarity.DefaultBuckets()[0].Level)
}

func TestBuckets_Validate(t *testing.T) {
	t.Run("nil table is valid", func(t *testing.T) {
		var bs similarity.Buckets
		assert.NoError(t, bs.Validate())
	})

	t.Run("inverted range", func(t *testing.T) {
		bs := similarity.Buckets{{Min: 4, Max: 1, Level: similarity.SlightlySimilar}}
		assert.ErrorIs(t, similarity.ErrInvalidBucket, bs.Validate())
	})

	t.Run("negative min", func(t *testing.T) {
		bs := similarity.Buckets{{Min: -2, Max: 1, Level: similarity.SlightlySimilar}}
		assert.ErrorIs(t, similarity.ErrInvalidBucket, bs.Validate())
	})

	t.Run("unknown level", func(t *testing.T) {
		bs := similarity.Buckets{{Min: 1, Max: 2, Level: 7}}
		err := bs.Validate()
		assert.ErrorIs(t, similarity.ErrInvalidBucket, err)
		assert.ErrorIs(t, similarity.ErrInvalidLevel, err)
	})

	t.Run("overlapping ranges", func(t *testing.T) {
		bs := similarity.Buckets{
			{Min: 1, Max: 5, Level: similarity.SlightlySimilar},
			{Min: 5, Max: 9, Level: similarity.ExactlyTheSame},
		}
		assert.ErrorIs(t, similarity.ErrInvalidBucket, bs.Validate())
	})

	t.Run("adjacent ranges are fine", func(t *testing.T) {
		bs := similarity.Buckets{
			{Min: 1, Max: 4, Level: similarity.SlightlySimilar},
			{Min: 5, Max: 9, Level: similarity.ExactlyTheSame},
		}
		assert.NoError(t, bs.Validate())
	})
}

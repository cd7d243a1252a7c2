package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyBounds(t *testing.T) {
	tests := []struct {
		bucket    string
		minRating *int
		maxRating *int
	}{
		{"easy", nil, intp(4)},
		{"medium", intp(5), intp(6)},
		{"hard", intp(7), intp(8)},
		{"extreme", intp(9), nil},
		{"nightmare", nil, nil}, // unrecognized bucket applies no predicate
		{"", nil, nil},
		{"HARD", nil, nil}, // buckets are lowercase only
	}

	for _, tt := range tests {
		t.Run(tt.bucket, func(t *testing.T) {
			minRating, maxRating := difficultyBounds(tt.bucket)
			assertIntPtr(t, tt.minRating, minRating)
			assertIntPtr(t, tt.maxRating, maxRating)
		})
	}
}

func intp(v int) *int {
	return &v
}

func assertIntPtr(t *testing.T, expected, actual *int) {
	t.Helper()
	if expected == nil {
		assert.Nil(t, actual)
		return
	}
	require.NotNil(t, actual)
	assert.Equal(t, *expected, *actual)
}

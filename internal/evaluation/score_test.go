package evaluation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }

func TestDeriveScoreFromEvaluation(t *testing.T) {
	s := DefaultScoreRules.Derive(ptrFloat(40), nil, ptrInt(50), nil)

	assert.Equal(t, 40.0, s.Total)
	assert.Equal(t, 50, s.Max)
	assert.Equal(t, 30, s.Passing)
	assert.Equal(t, 80, s.Percentage)
	assert.True(t, s.FromEvaluation)
	assert.True(t, s.Passed())
}

func TestDeriveScoreFallbackReportsZeroPercentage(t *testing.T) {
	s := DefaultScoreRules.Derive(nil, ptrFloat(45), ptrInt(50), ptrInt(40))

	assert.Equal(t, 45.0, s.Total)
	assert.Equal(t, 0, s.Percentage)
	assert.False(t, s.FromEvaluation)
	assert.True(t, s.Known)
	assert.Equal(t, 40, s.Passing)
}

func TestDeriveScoreDefaults(t *testing.T) {
	s := DefaultScoreRules.Derive(nil, nil, nil, ptrInt(0))

	assert.Equal(t, 0.0, s.Total)
	assert.Equal(t, 50, s.Max)
	assert.Equal(t, 30, s.Passing)
	assert.False(t, s.Known)
}

func TestDeriveScoreZeroEvaluationFallsBack(t *testing.T) {
	s := DefaultScoreRules.Derive(ptrFloat(0), ptrFloat(12), nil, nil)

	assert.Equal(t, 12.0, s.Total)
	assert.False(t, s.FromEvaluation)
	assert.Equal(t, 0, s.Percentage)
}

func TestDeriveScoreRoundsHalfUp(t *testing.T) {
	s := DefaultScoreRules.Derive(ptrFloat(1), nil, ptrInt(8), nil)
	assert.Equal(t, 13, s.Percentage) // 12.5
}

func TestDeriveScoreCustomRules(t *testing.T) {
	s := ScoreRules{DefaultMax: 100, DefaultPassing: 60}.Derive(ptrFloat(55), nil, nil, nil)

	assert.Equal(t, 100, s.Max)
	assert.Equal(t, 55, s.Percentage)
	assert.False(t, s.Passed())
}

func TestCategorize(t *testing.T) {
	low := DefaultScoreRules.Derive(ptrFloat(10), nil, nil, nil)
	high := DefaultScoreRules.Derive(ptrFloat(45), nil, nil, nil)
	unknown := DefaultScoreRules.Derive(nil, nil, nil, nil)

	cases := []struct {
		status string
		score  Score
		want   Category
	}{
		{"PASSED", low, CategoryCompleted},
		{"failed", low, CategoryCompleted},
		{"ACCEPTED", high, CategoryCompleted},
		{"REJECTED", unknown, CategoryCompleted},
		{"SUBMITTED", low, CategoryNotMet},
		{" reviewing ", low, CategoryNotMet},
		{"EVALUATED", high, CategoryInProgress},
		{"PENDING", unknown, CategoryInProgress},
		{"ARCHIVED", low, CategoryInProgress},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Categorize(tc.status, tc.score), tc.status)
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("")
	assert.True(t, ok)
	assert.Equal(t, CategoryInProgress, c)

	c, ok = ParseCategory("NOT-MET")
	assert.True(t, ok)
	assert.Equal(t, CategoryNotMet, c)

	_, ok = ParseCategory("archived")
	assert.False(t, ok)
}

func TestBucketByDate(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, loc)

	assert.Equal(t, BucketToday, BucketByDate(now.Add(-8*time.Hour), now, loc))
	assert.Equal(t, BucketThisWeek, BucketByDate(now.Add(-10*time.Hour), now, loc))
	assert.Equal(t, BucketThisWeek, BucketByDate(now.AddDate(0, 0, -6), now, loc))
	assert.Equal(t, BucketThisMonth, BucketByDate(now.AddDate(0, 0, -8), now, loc))
	assert.Equal(t, BucketOlder, BucketByDate(now.AddDate(0, 0, -31), now, loc))
	assert.Equal(t, BucketToday, BucketByDate(now.Add(time.Hour), now, loc))
}

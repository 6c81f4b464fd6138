package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrade(t *testing.T) {
	cases := []struct {
		raw  string
		want Grade
		ok   bool
	}{
		{"우수", GradeExcellent, true},
		{" 보통 ", GradeNormal, true},
		{"미흡", GradeInsufficient, true},
		{"부족", GradeLack, true},
		{"excellent", GradeExcellent, true},
		{"LACK", GradeLack, true},
		{"최고", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseGrade(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestCountGradesInitializesAllGrades(t *testing.T) {
	counts := CountGrades(nil)
	require.Len(t, counts, 4)
	for _, g := range Grades {
		assert.Equal(t, 0, counts[g])
	}
}

func TestCountGradesIgnoresUnknown(t *testing.T) {
	items := []CheckedContent{
		{Content: "a", Evaluation: "우수"},
		{Content: "b", Evaluation: "우수"},
		{Content: "c", Evaluation: "미흡"},
		{Content: "d", Evaluation: "훌륭"},
		{Content: "e", Evaluation: "LACK"},
		{Content: "f", Evaluation: ""},
	}
	counts := CountGrades(items)

	assert.Equal(t, 2, counts[GradeExcellent])
	assert.Equal(t, 0, counts[GradeNormal])
	assert.Equal(t, 1, counts[GradeInsufficient])
	assert.Equal(t, 1, counts[GradeLack])
	assert.Equal(t, 4, counts.Total())
	require.Len(t, counts, 4)
}

func TestCountGradesSumMatchesKnownItems(t *testing.T) {
	labels := []string{"우수", "보통", "미흡", "부족", "?", "normal", "x"}
	var items []CheckedContent
	known := 0
	for i := 0; i < 50; i++ {
		label := labels[i%len(labels)]
		if _, ok := ParseGrade(label); ok {
			known++
		}
		items = append(items, CheckedContent{Content: "c", Evaluation: label})
	}
	assert.Equal(t, known, CountGrades(items).Total())
}

func TestGroupByCriterionKeepsOrder(t *testing.T) {
	items := []CheckedContent{
		{Content: "one", Evaluation: "우수", Reason: "r1", CriterionName: "창의성"},
		{Content: "two", Evaluation: "미흡", Reason: "r2", CriterionName: "논리성"},
		{Content: "three", Evaluation: "우수", Reason: "r3", CriterionName: "창의성"},
		{Content: "four", Evaluation: "모름", Reason: "r4", CriterionName: "창의성"},
		{Content: "five", Evaluation: "모름", Reason: "r5", CriterionName: "성실성"},
	}
	got := GroupByCriterion(items)

	require.Len(t, got, 3)
	assert.Equal(t, "창의성", got[0].Name)
	assert.Equal(t, "논리성", got[1].Name)
	assert.Equal(t, "성실성", got[2].Name)

	assert.Equal(t, []Note{{Content: "one", Reason: "r1"}, {Content: "three", Reason: "r3"}}, got[0].ByGrade[GradeExcellent])
	assert.Empty(t, got[0].ByGrade[GradeNormal])
	assert.NotNil(t, got[0].ByGrade[GradeNormal])
	assert.Equal(t, []Note{{Content: "two", Reason: "r2"}}, got[1].ByGrade[GradeInsufficient])
	assert.Equal(t, 0, got[2].Count())
	for _, summary := range got {
		assert.Len(t, summary.ByGrade, 4)
	}
}

func TestGroupByCriterionPlacesEachKnownItemOnce(t *testing.T) {
	items := []CheckedContent{
		{Content: "a", Evaluation: "보통", CriterionName: "x"},
		{Content: "b", Evaluation: "보통", CriterionName: "y"},
		{Content: "c", Evaluation: "부족", CriterionName: "x"},
		{Content: "d", Evaluation: "bad", CriterionName: "y"},
		{Content: "e", Evaluation: "보통", CriterionName: "x"},
	}
	got := GroupByCriterion(items)

	total := 0
	for _, s := range got {
		total += s.Count()
	}
	assert.Equal(t, 4, total)
	assert.Equal(t, []Note{{Content: "a"}, {Content: "e"}}, got[0].ByGrade[GradeNormal])
}

func TestGroupByCriterionEmpty(t *testing.T) {
	got := GroupByCriterion(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

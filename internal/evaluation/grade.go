// Package evaluation derives the reviewer view of an AI evaluation: grade
// statistics, per-criterion summaries, highlighted answer text, scores and
// application categories. Everything here is pure and allocation-only.
package evaluation

import "strings"

// Grade is the quality grade the evaluator assigns to a checked fragment.
type Grade string

const (
	GradeExcellent    Grade = "EXCELLENT"
	GradeNormal       Grade = "NORMAL"
	GradeInsufficient Grade = "INSUFFICIENT"
	GradeLack         Grade = "LACK"
)

// Grades lists the known grades from best to worst.
var Grades = []Grade{GradeExcellent, GradeNormal, GradeInsufficient, GradeLack}

var gradeLabels = map[Grade]string{
	GradeExcellent:    "우수",
	GradeNormal:       "보통",
	GradeInsufficient: "미흡",
	GradeLack:         "부족",
}

// Label returns the Korean label shown to reviewers.
func (g Grade) Label() string {
	return gradeLabels[g]
}

// Valid reports whether g is one of the four known grades.
func (g Grade) Valid() bool {
	_, ok := gradeLabels[g]
	return ok
}

// CSSClass is the style discriminator used by the HTML renderer.
func (g Grade) CSSClass() string {
	if !g.Valid() {
		return "eval-unknown"
	}
	return "eval-" + strings.ToLower(string(g))
}

// ParseGrade accepts either the Korean label or the English name.
func ParseGrade(raw string) (Grade, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	for g, label := range gradeLabels {
		if trimmed == label {
			return g, true
		}
	}
	g := Grade(strings.ToUpper(trimmed))
	if g.Valid() {
		return g, true
	}
	return "", false
}

package evaluation

import "math"

// ScoreRules holds the fallback maximum and passing score used when a job
// posting does not configure its own.
type ScoreRules struct {
	DefaultMax     int
	DefaultPassing int
}

// DefaultScoreRules matches the job posting defaults: 50 points, 30 to pass.
var DefaultScoreRules = ScoreRules{DefaultMax: 50, DefaultPassing: 30}

// Score is the derived score of one application.
type Score struct {
	Total          float64 `json:"total"`
	Max            int     `json:"max"`
	Passing        int     `json:"passing"`
	Percentage     int     `json:"percentage"`
	FromEvaluation bool    `json:"from_evaluation"`
	Known          bool    `json:"known"`
}

// Passed reports whether the total reaches the passing score.
func (s Score) Passed() bool {
	return s.Total >= float64(s.Passing)
}

// Derive computes the score of an application. evaluationTotal comes from the
// live evaluation result, storedTotal from the application record. Zero values
// count as absent, like the nil pointers.
//
// Percentage is only computed when the total comes from the evaluation result;
// a stored fallback total reports 0%.
func (r ScoreRules) Derive(evaluationTotal, storedTotal *float64, postingTotal, postingPassing *int) Score {
	defaults := r.normalized()
	s := Score{
		Max:     defaults.DefaultMax,
		Passing: defaults.DefaultPassing,
	}
	if postingTotal != nil && *postingTotal != 0 {
		s.Max = *postingTotal
	}
	if postingPassing != nil && *postingPassing != 0 {
		s.Passing = *postingPassing
	}

	s.Known = evaluationTotal != nil || storedTotal != nil
	switch {
	case evaluationTotal != nil && *evaluationTotal != 0:
		s.Total = *evaluationTotal
		s.FromEvaluation = true
	case storedTotal != nil && *storedTotal != 0:
		s.Total = *storedTotal
	}

	if s.FromEvaluation && s.Max != 0 {
		s.Percentage = int(math.Floor(s.Total/float64(s.Max)*100 + 0.5))
	}
	return s
}

func (r ScoreRules) normalized() ScoreRules {
	if r.DefaultMax <= 0 {
		r.DefaultMax = DefaultScoreRules.DefaultMax
	}
	if r.DefaultPassing <= 0 {
		r.DefaultPassing = DefaultScoreRules.DefaultPassing
	}
	return r
}

package contract

import "recruit-backend/internal/evaluation"

// EvaluationResult is the scored JSON produced by the AI evaluator. Every
// nested object is optional.
type EvaluationResult struct {
	TotalScore        *float64           `json:"total_score,omitempty"`
	OverallEvaluation *OverallEvaluation `json:"overall_evaluation,omitempty"`
	ResumeScores      []ResumeScore      `json:"resume_scores,omitempty"`
	CoverLetterScores []CoverLetterScore `json:"cover_letter_scores,omitempty"`
}

type OverallEvaluation struct {
	ComprehensiveEvaluation string   `json:"comprehensive_evaluation,omitempty"`
	Strengths               []string `json:"strengths,omitempty"`
	ImprovementPoints       []string `json:"improvement_points,omitempty"`
	KeyInsights             []string `json:"key_insights,omitempty"`
	ConfidenceLevel         *float64 `json:"confidence_level,omitempty"`
	PassDecision            string   `json:"pass_decision,omitempty"`
}

type ResumeScore struct {
	ID       string  `json:"id"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"max_score"`
}

type CoverLetterScore struct {
	QuestionID      string                      `json:"question_id"`
	Tags            []string                    `json:"tags,omitempty"`
	CheckedContents []evaluation.CheckedContent `json:"checked_contents"`
}

// Total returns the total score when the evaluator reported one.
func (r *EvaluationResult) Total() *float64 {
	if r == nil {
		return nil
	}
	return r.TotalScore
}

// Overall returns the overall evaluation or nil.
func (r *EvaluationResult) Overall() *OverallEvaluation {
	if r == nil {
		return nil
	}
	return r.OverallEvaluation
}

// Comprehensive returns the comprehensive evaluation text, if any.
func (r *EvaluationResult) Comprehensive() (string, bool) {
	o := r.Overall()
	if o == nil || o.ComprehensiveEvaluation == "" {
		return "", false
	}
	return o.ComprehensiveEvaluation, true
}

// CoverLetterScoresByQuestion indexes cover-letter evaluations by question id.
// The first entry wins when a question appears twice.
func (r *EvaluationResult) CoverLetterScoresByQuestion() map[string]CoverLetterScore {
	out := make(map[string]CoverLetterScore)
	if r == nil {
		return out
	}
	for _, s := range r.CoverLetterScores {
		if _, ok := out[s.QuestionID]; ok {
			continue
		}
		out[s.QuestionID] = s
	}
	return out
}

// ResumeScoresByID indexes resume scores by question id.
func (r *EvaluationResult) ResumeScoresByID() map[string]ResumeScore {
	out := make(map[string]ResumeScore)
	if r == nil {
		return out
	}
	for _, s := range r.ResumeScores {
		out[s.ID] = s
	}
	return out
}

// Result converts a cover-letter score into the evaluation package's input.
func (s CoverLetterScore) Result() evaluation.Result {
	return evaluation.Result{
		QuestionID:      s.QuestionID,
		Tags:            s.Tags,
		CheckedContents: s.CheckedContents,
	}
}

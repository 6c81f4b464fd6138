package review

import (
	"time"

	"recruit-backend/internal/backend"
	"recruit-backend/internal/contract"
	"recruit-backend/internal/evaluation"
	"recruit-backend/internal/shared/metrics"
	"recruit-backend/internal/shared/telemetry"
)

// PostingSummary is the part of a job posting shown next to an application.
type PostingSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	TotalScore   *int   `json:"total_score,omitempty"`
	PassingScore *int   `json:"passing_score,omitempty"`
}

// ResumeAnswerView is one resume answer and the score the evaluator gave it.
type ResumeAnswerView struct {
	QuestionID string                `json:"question_id"`
	Question   string                `json:"question"`
	Answer     string                `json:"answer"`
	Score      *contract.ResumeScore `json:"score,omitempty"`
}

// AnswerView is one cover-letter answer with its grade statistics, criterion
// summaries and highlighted text.
type AnswerView struct {
	QuestionID string                        `json:"question_id"`
	Question   string                        `json:"question"`
	Text       string                        `json:"text"`
	Tags       []string                      `json:"tags"`
	Stats      evaluation.GradeCounts        `json:"stats"`
	Criteria   []evaluation.CriterionSummary `json:"criteria"`
	Annotation evaluation.Annotation         `json:"annotation"`
	Evaluated  bool                          `json:"evaluated"`
}

// ApplicationView is the full reviewer screen for one application.
type ApplicationView struct {
	ID                 string                      `json:"id"`
	Status             string                      `json:"status"`
	Category           evaluation.Category         `json:"category"`
	Applicant          contract.Applicant          `json:"applicant"`
	JobPosting         *PostingSummary             `json:"job_posting,omitempty"`
	Score              evaluation.Score            `json:"score"`
	Overall            *contract.OverallEvaluation `json:"overall_evaluation,omitempty"`
	Comment            string                      `json:"comment,omitempty"`
	ResumeAnswers      []ResumeAnswerView          `json:"resume_answers"`
	CoverLetterAnswers []AnswerView                `json:"cover_letter_answers"`
	SubmittedAt        time.Time                   `json:"submitted_at"`
	EvaluatedAt        *time.Time                  `json:"evaluated_at,omitempty"`
}

// BuildApplicationView derives the reviewer view from a fetched bundle.
func BuildApplicationView(bundle backend.ReviewBundle, rules evaluation.ScoreRules) ApplicationView {
	app := bundle.Details.Application
	applicant := bundle.Details.Applicant
	if applicant.Name == "" && applicant.Email == "" {
		applicant = app.Applicant
	}

	var postingTotal, postingPassing *int
	var posting *PostingSummary
	if p := bundle.JobPosting; p != nil {
		postingTotal, postingPassing = p.TotalScore, p.PassingScore
		posting = &PostingSummary{ID: p.ID, Title: p.Title, TotalScore: p.TotalScore, PassingScore: p.PassingScore}
	}
	score := rules.Derive(bundle.Evaluation.Total(), app.TotalScore, postingTotal, postingPassing)

	view := ApplicationView{
		ID:          app.ID,
		Status:      app.Status,
		Category:    evaluation.Categorize(app.Status, score),
		Applicant:   applicant,
		JobPosting:  posting,
		Score:       score,
		Overall:     bundle.Evaluation.Overall(),
		Comment:     app.EvaluationComment,
		SubmittedAt: app.CreatedAt,
		EvaluatedAt: app.EvaluatedAt,
	}

	resumeScores := bundle.Evaluation.ResumeScoresByID()
	view.ResumeAnswers = make([]ResumeAnswerView, 0, len(bundle.Details.ResumeAnswers))
	for _, a := range bundle.Details.ResumeAnswers {
		rv := ResumeAnswerView{QuestionID: a.QuestionID, Question: a.Question, Answer: a.Answer}
		if s, ok := resumeScores[a.QuestionID]; ok {
			rv.Score = &s
		}
		view.ResumeAnswers = append(view.ResumeAnswers, rv)
	}

	coverScores := bundle.Evaluation.CoverLetterScoresByQuestion()
	view.CoverLetterAnswers = make([]AnswerView, 0, len(bundle.Details.CoverLetterAnswers))
	for _, a := range bundle.Details.CoverLetterAnswers {
		var result *evaluation.Result
		if s, ok := coverScores[a.QuestionID]; ok {
			r := s.Result()
			result = &r
		}
		av := BuildAnswerView(a.QuestionID, a.Answer, result, app.ID)
		av.Question = a.Question
		view.CoverLetterAnswers = append(view.CoverLetterAnswers, av)
	}
	return view
}

// BuildAnswerView annotates one answer. Statistics and criteria cover every
// checked content; highlighting only the ones found in the text. A nil result
// yields the plain text with empty statistics.
func BuildAnswerView(questionID, text string, result *evaluation.Result, applicationID string) AnswerView {
	view := AnswerView{
		QuestionID: questionID,
		Text:       text,
		Tags:       []string{},
	}
	var items []evaluation.CheckedContent
	if result != nil {
		items = result.CheckedContents
		view.Evaluated = true
		if result.Tags != nil {
			view.Tags = result.Tags
		}
	}
	view.Stats = evaluation.CountGrades(items)
	view.Criteria = evaluation.GroupByCriterion(items)
	view.Annotation = evaluation.Highlight(text, items, evaluation.WithMissHook(func(index int, item evaluation.CheckedContent) {
		telemetry.Debug("evaluation.content_not_found", map[string]any{
			"application_id": applicationID,
			"question_id":    questionID,
			"index":          index,
			"content":        item.Content,
		})
	}))
	metrics.AddHighlight(len(view.Annotation.Spans), len(view.Annotation.Missed))
	return view
}

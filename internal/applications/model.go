package applications

import (
	"time"

	"recruit-backend/internal/contract"
)

const (
	StatusSubmitted = "SUBMITTED"
	StatusEvaluated = "EVALUATED"
)

// Application is a submitted application together with its answers and the
// evaluator output, when one has been delivered.
type Application struct {
	ID                 string
	JobPostingID       string
	Applicant          contract.Applicant
	Status             string
	TotalScore         *float64
	EvaluationComment  string
	EvaluatedAt        *time.Time
	ResumeAnswers      []contract.AnswerRecord
	CoverLetterAnswers []contract.AnswerRecord
	EvaluationResult   *contract.EvaluationResult
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

package jobpostings

import (
	"time"

	"recruit-backend/internal/contract"
)

const (
	StatusDraft  = "DRAFT"
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"
)

// JobPosting is an opening with its application questions and scoring
// configuration.
type JobPosting struct {
	ID                   string
	CompanyID            string
	Title                string
	Description          string
	Status               string
	TotalScore           *int
	PassingScore         *int
	ResumeQuestions      []contract.ResumeQuestion
	CoverLetterQuestions []contract.CoverLetterQuestion
	StartDate            *time.Time
	EndDate              *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Public reports whether the posting is visible to the application form.
func (p JobPosting) Public() bool {
	return p.Status != StatusDraft
}

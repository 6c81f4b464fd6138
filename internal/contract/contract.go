// Package contract holds the JSON shapes of the recruiting REST API shared by
// the backend client, the reference server and the review service.
package contract

import "time"

type Company struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	BusinessNumber string    `json:"businessNumber,omitempty"`
	Industry       string    `json:"industry,omitempty"`
	Description    string    `json:"description,omitempty"`
	Website        string    `json:"website,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CreateCompanyRequest struct {
	Name           string `json:"name"`
	BusinessNumber string `json:"businessNumber,omitempty"`
	Industry       string `json:"industry,omitempty"`
	Description    string `json:"description,omitempty"`
	Website        string `json:"website,omitempty"`
}

type ResumeQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	MaxScore int    `json:"maxScore,omitempty"`
	Required bool   `json:"required"`
}

type CoverLetterQuestion struct {
	ID        string   `json:"id"`
	Question  string   `json:"question"`
	MaxLength int      `json:"maxLength,omitempty"`
	Criteria  []string `json:"criteria,omitempty"`
	Required  bool     `json:"required"`
}

type JobPosting struct {
	ID                   string                `json:"id"`
	CompanyID            string                `json:"companyId"`
	Title                string                `json:"title"`
	Description          string                `json:"description,omitempty"`
	Status               string                `json:"status"`
	TotalScore           *int                  `json:"totalScore,omitempty"`
	PassingScore         *int                  `json:"passingScore,omitempty"`
	ResumeQuestions      []ResumeQuestion      `json:"resumeQuestions"`
	CoverLetterQuestions []CoverLetterQuestion `json:"coverLetterQuestions"`
	StartDate            *time.Time            `json:"startDate,omitempty"`
	EndDate              *time.Time            `json:"endDate,omitempty"`
	CreatedAt            time.Time             `json:"createdAt"`
	UpdatedAt            time.Time             `json:"updatedAt"`
}

// JobPostingRequest is the body of POST /job-postings and PUT /job-postings/{id}.
type JobPostingRequest struct {
	CompanyID            string                `json:"companyId"`
	Title                string                `json:"title"`
	Description          string                `json:"description,omitempty"`
	Status               string                `json:"status,omitempty"`
	TotalScore           *int                  `json:"totalScore,omitempty"`
	PassingScore         *int                  `json:"passingScore,omitempty"`
	ResumeQuestions      []ResumeQuestion      `json:"resumeQuestions"`
	CoverLetterQuestions []CoverLetterQuestion `json:"coverLetterQuestions"`
	StartDate            *time.Time            `json:"startDate,omitempty"`
	EndDate              *time.Time            `json:"endDate,omitempty"`
}

// PublicJobPosting is what the unauthenticated application form sees.
// Scoring configuration is not exposed.
type PublicJobPosting struct {
	ID                   string                `json:"id"`
	CompanyName          string                `json:"companyName,omitempty"`
	Title                string                `json:"title"`
	Description          string                `json:"description,omitempty"`
	ResumeQuestions      []ResumeQuestion      `json:"resumeQuestions"`
	CoverLetterQuestions []CoverLetterQuestion `json:"coverLetterQuestions"`
	StartDate            *time.Time            `json:"startDate,omitempty"`
	EndDate              *time.Time            `json:"endDate,omitempty"`
}

type Applicant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type Application struct {
	ID                string     `json:"id"`
	JobPostingID      string     `json:"jobPostingId"`
	Applicant         Applicant  `json:"applicant"`
	Status            string     `json:"status"`
	TotalScore        *float64   `json:"totalScore,omitempty"`
	EvaluationComment string     `json:"evaluationComment,omitempty"`
	EvaluatedAt       *time.Time `json:"evaluatedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type AnswerRecord struct {
	QuestionID string `json:"questionId"`
	Question   string `json:"question,omitempty"`
	Answer     string `json:"answer"`
}

// ApplicationDetails is the body of GET /applications/{id}/details.
type ApplicationDetails struct {
	Application        Application       `json:"application"`
	Applicant          Applicant         `json:"applicant"`
	ResumeAnswers      []AnswerRecord    `json:"resumeAnswers"`
	CoverLetterAnswers []AnswerRecord    `json:"coverLetterAnswers"`
	EvaluationResult   *EvaluationResult `json:"evaluationResult,omitempty"`
}

// SubmitApplicationRequest is the body of POST /applications/job-postings/{id}.
type SubmitApplicationRequest struct {
	Applicant          Applicant      `json:"applicant"`
	ResumeAnswers      []AnswerRecord `json:"resumeAnswers"`
	CoverLetterAnswers []AnswerRecord `json:"coverLetterAnswers"`
}

// EvaluationUpdate is the body of PUT /applications/{id}/evaluation.
type EvaluationUpdate struct {
	Comment string `json:"comment"`
	Status  string `json:"status"`
}

// EvaluationResultEntry is one item of GET /applications/job-postings/{id}/evaluation-results.
type EvaluationResultEntry struct {
	ApplicationID    string            `json:"applicationId"`
	EvaluationResult *EvaluationResult `json:"evaluationResult"`
}

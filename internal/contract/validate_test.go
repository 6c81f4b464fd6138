package contract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePosting() PublicJobPosting {
	return PublicJobPosting{
		ID:    "posting-1",
		Title: "백엔드 개발자",
		ResumeQuestions: []ResumeQuestion{
			{ID: "r1", Question: "경력", Required: true},
			{ID: "r2", Question: "블로그"},
		},
		CoverLetterQuestions: []CoverLetterQuestion{
			{ID: "c1", Question: "지원 동기", MaxLength: 10, Required: true},
		},
	}
}

func TestValidateSubmissionOK(t *testing.T) {
	req := SubmitApplicationRequest{
		Applicant:          Applicant{Name: "김지원", Email: "jiwon@example.com"},
		ResumeAnswers:      []AnswerRecord{{QuestionID: "r1", Answer: "3년"}},
		CoverLetterAnswers: []AnswerRecord{{QuestionID: "c1", Answer: "열정이 있습니다"}},
	}
	assert.NoError(t, ValidateSubmission(samplePosting(), req))
}

func TestValidateSubmissionReportsMissingFields(t *testing.T) {
	req := SubmitApplicationRequest{
		Applicant:          Applicant{Name: " ", Email: "not-an-email"},
		CoverLetterAnswers: []AnswerRecord{{QuestionID: "c1", Answer: "열한 글자가 넘는 답변입니다"}},
	}
	err := ValidateSubmission(samplePosting(), req)

	var missing MissingFieldsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{
		"applicant.name",
		"applicant.email",
		"resumeAnswers.r1",
		"coverLetterAnswers.c1.maxLength",
	}, missing.Fields)
}

func TestEvaluationResultAccessorsHandleNil(t *testing.T) {
	var r *EvaluationResult
	assert.Nil(t, r.Total())
	assert.Nil(t, r.Overall())
	_, ok := r.Comprehensive()
	assert.False(t, ok)
	assert.Empty(t, r.CoverLetterScoresByQuestion())
	assert.Empty(t, r.ResumeScoresByID())
}

func TestCoverLetterScoresByQuestionFirstWins(t *testing.T) {
	r := &EvaluationResult{CoverLetterScores: []CoverLetterScore{
		{QuestionID: "q1", Tags: []string{"first"}},
		{QuestionID: "q1", Tags: []string{"second"}},
	}}
	assert.Equal(t, []string{"first"}, r.CoverLetterScoresByQuestion()["q1"].Tags)
}

package contract

import (
	"net/mail"
	"strings"
)

type MissingFieldsError struct {
	Fields []string
}

func (e MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// ValidateSubmission checks a public application against the posting's
// questions. Every required question must be answered with non-blank text.
func ValidateSubmission(posting PublicJobPosting, req SubmitApplicationRequest) error {
	missing := make([]string, 0, 4)
	if !hasValue(req.Applicant.Name) {
		missing = append(missing, "applicant.name")
	}
	if !hasValue(req.Applicant.Email) {
		missing = append(missing, "applicant.email")
	} else if _, err := mail.ParseAddress(strings.TrimSpace(req.Applicant.Email)); err != nil {
		missing = append(missing, "applicant.email")
	}

	resume := answersByQuestion(req.ResumeAnswers)
	for _, q := range posting.ResumeQuestions {
		if q.Required && !hasValue(resume[q.ID]) {
			missing = append(missing, "resumeAnswers."+q.ID)
		}
	}
	cover := answersByQuestion(req.CoverLetterAnswers)
	for _, q := range posting.CoverLetterQuestions {
		answer := cover[q.ID]
		if q.Required && !hasValue(answer) {
			missing = append(missing, "coverLetterAnswers."+q.ID)
			continue
		}
		if q.MaxLength > 0 && len([]rune(answer)) > q.MaxLength {
			missing = append(missing, "coverLetterAnswers."+q.ID+".maxLength")
		}
	}

	if len(missing) > 0 {
		return MissingFieldsError{Fields: missing}
	}
	return nil
}

func answersByQuestion(answers []AnswerRecord) map[string]string {
	out := make(map[string]string, len(answers))
	for _, a := range answers {
		out[a.QuestionID] = a.Answer
	}
	return out
}

func hasValue(value string) bool {
	return strings.TrimSpace(value) != ""
}

package evaluation

// Answer is the text an applicant submitted for one question.
type Answer struct {
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
}

// CheckedContent is one graded fragment of an answer.
type CheckedContent struct {
	Content       string `json:"content"`
	Evaluation    string `json:"evaluation"`
	Reason        string `json:"reason"`
	CriterionName string `json:"criterion_name"`
}

// Grade parses the raw evaluation string.
func (c CheckedContent) Grade() (Grade, bool) {
	return ParseGrade(c.Evaluation)
}

// Result is the evaluation of one cover-letter answer.
type Result struct {
	QuestionID      string           `json:"question_id"`
	Tags            []string         `json:"tags,omitempty"`
	CheckedContents []CheckedContent `json:"checked_contents"`
}

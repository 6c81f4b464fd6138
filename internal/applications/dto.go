package applications

import "recruit-backend/internal/contract"

// ToContract converts an Application into its list shape.
func ToContract(app Application) contract.Application {
	return contract.Application{
		ID:                app.ID,
		JobPostingID:      app.JobPostingID,
		Applicant:         app.Applicant,
		Status:            app.Status,
		TotalScore:        app.TotalScore,
		EvaluationComment: app.EvaluationComment,
		EvaluatedAt:       app.EvaluatedAt,
		CreatedAt:         app.CreatedAt,
		UpdatedAt:         app.UpdatedAt,
	}
}

// ToDetails converts an Application into the details shape.
func ToDetails(app Application) contract.ApplicationDetails {
	resume := app.ResumeAnswers
	if resume == nil {
		resume = []contract.AnswerRecord{}
	}
	cover := app.CoverLetterAnswers
	if cover == nil {
		cover = []contract.AnswerRecord{}
	}
	return contract.ApplicationDetails{
		Application:        ToContract(app),
		Applicant:          app.Applicant,
		ResumeAnswers:      resume,
		CoverLetterAnswers: cover,
		EvaluationResult:   app.EvaluationResult,
	}
}

func toContractList(apps []Application) []contract.Application {
	out := make([]contract.Application, 0, len(apps))
	for _, app := range apps {
		out = append(out, ToContract(app))
	}
	return out
}

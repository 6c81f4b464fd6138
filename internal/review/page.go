package review

import (
	"bytes"
	"html/template"

	"recruit-backend/internal/evaluation"
)

var pageTemplate = template.Must(template.New("review").Funcs(template.FuncMap{
	"highlight": func(segments []evaluation.Segment) template.HTML {
		// RenderHTML escapes every text and reason it emits.
		return template.HTML(evaluation.RenderHTML(segments))
	},
	"label":  func(g evaluation.Grade) string { return g.Label() },
	"grades": func() []evaluation.Grade { return evaluation.Grades },
}).Parse(`<!doctype html>
<html lang="ko">
<head><meta charset="utf-8"><title>{{.Applicant.Name}} 지원서 평가</title></head>
<body>
<h1>{{.Applicant.Name}}</h1>
<p class="status">{{.Status}} · {{printf "%.0f" .Score.Total}} / {{.Score.Max}}점 ({{.Score.Percentage}}%)</p>
{{with .Overall}}<section class="overall"><p>{{.ComprehensiveEvaluation}}</p></section>{{end}}
{{range .CoverLetterAnswers}}
<section class="answer" data-question="{{.QuestionID}}">
<h2>{{.Question}}</h2>
{{$stats := .Stats}}<ul class="stats">{{range $g := grades}}<li class="{{$g.CSSClass}}">{{label $g}} {{index $stats $g}}</li>{{end}}</ul>
<p class="text">{{highlight .Annotation.Segments}}</p>
</section>
{{end}}
</body>
</html>
`))

// RenderPage renders the reviewer view as a standalone HTML document.
func RenderPage(view ApplicationView) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

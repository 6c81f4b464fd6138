package evaluation

import (
	"html"
	"strings"
)

// RenderHTML renders segments as HTML. Every piece of text and every reason is
// escaped; annotated segments become <mark> elements carrying the grade class
// and the reason as title.
func RenderHTML(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		text := html.EscapeString(s.Text)
		if s.Kind != SegmentAnnotated {
			b.WriteString(text)
			continue
		}
		b.WriteString(`<mark class="`)
		b.WriteString(s.Grade.CSSClass())
		b.WriteString(`" data-evaluation="`)
		b.WriteString(html.EscapeString(s.Evaluation))
		b.WriteString(`" title="`)
		b.WriteString(html.EscapeString(s.Reason))
		b.WriteString(`">`)
		b.WriteString(text)
		b.WriteString(`</mark>`)
	}
	return b.String()
}

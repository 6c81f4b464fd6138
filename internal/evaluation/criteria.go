package evaluation

// Note is the content and rationale of one fragment inside a criterion summary.
type Note struct {
	Content string `json:"content"`
	Reason  string `json:"reason"`
}

// CriterionSummary groups the fragments evaluated against one criterion.
// ByGrade always carries all four grades; empty grades hold empty slices.
type CriterionSummary struct {
	Name    string           `json:"name"`
	ByGrade map[Grade][]Note `json:"by_grade"`
}

// Count returns the number of notes across all grades.
func (s CriterionSummary) Count() int {
	n := 0
	for _, notes := range s.ByGrade {
		n += len(notes)
	}
	return n
}

// GroupByCriterion groups items by criterion name in first-seen order, then by
// grade in input order. Items with an unknown grade are dropped; a criterion
// whose only items are unknown-graded still appears with empty buckets.
func GroupByCriterion(items []CheckedContent) []CriterionSummary {
	var out []CriterionSummary
	index := make(map[string]int)
	for _, item := range items {
		pos, ok := index[item.CriterionName]
		if !ok {
			pos = len(out)
			index[item.CriterionName] = pos
			out = append(out, newCriterionSummary(item.CriterionName))
		}
		g, ok := item.Grade()
		if !ok {
			continue
		}
		out[pos].ByGrade[g] = append(out[pos].ByGrade[g], Note{Content: item.Content, Reason: item.Reason})
	}
	if out == nil {
		out = []CriterionSummary{}
	}
	return out
}

func newCriterionSummary(name string) CriterionSummary {
	byGrade := make(map[Grade][]Note, len(Grades))
	for _, g := range Grades {
		byGrade[g] = []Note{}
	}
	return CriterionSummary{Name: name, ByGrade: byGrade}
}

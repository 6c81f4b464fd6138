package evaluation

// GradeCounts maps every known grade to the number of fragments with it.
type GradeCounts map[Grade]int

// NewGradeCounts returns counts with all four grades present at zero.
func NewGradeCounts() GradeCounts {
	counts := make(GradeCounts, len(Grades))
	for _, g := range Grades {
		counts[g] = 0
	}
	return counts
}

// Total sums the counts.
func (c GradeCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// CountGrades tallies items by grade. Items with an unknown grade are ignored.
func CountGrades(items []CheckedContent) GradeCounts {
	counts := NewGradeCounts()
	for _, item := range items {
		g, ok := item.Grade()
		if !ok {
			continue
		}
		counts[g]++
	}
	return counts
}

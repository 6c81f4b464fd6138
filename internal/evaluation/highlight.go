package evaluation

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Span locates one checked content inside an answer. Start and End are rune
// offsets into the answer text.
type Span struct {
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Evaluation string `json:"evaluation"`
	Grade      Grade  `json:"grade,omitempty"`
	Reason     string `json:"reason"`
	Content    string `json:"content"`
}

// SegmentKind discriminates plain text from annotated text.
type SegmentKind string

const (
	SegmentPlain     SegmentKind = "plain"
	SegmentAnnotated SegmentKind = "annotated"
)

// Segment is one piece of the annotated answer. Renderers must escape Text
// and Reason themselves.
type Segment struct {
	Kind       SegmentKind `json:"kind"`
	Text       string      `json:"text"`
	Evaluation string      `json:"evaluation,omitempty"`
	Grade      Grade       `json:"grade,omitempty"`
	Reason     string      `json:"reason,omitempty"`
}

// Annotation is the highlighted form of one answer.
type Annotation struct {
	Text        string    `json:"text"`
	Spans       []Span    `json:"spans"`
	Segments    []Segment `json:"segments"`
	Missed      []int     `json:"missed,omitempty"`
	Highlighted bool      `json:"highlighted"`
}

// MissFunc receives items whose content does not occur in the text.
type MissFunc func(index int, item CheckedContent)

type highlightOptions struct {
	onMiss MissFunc
}

// HighlightOption configures Highlight.
type HighlightOption func(*highlightOptions)

// WithMissHook reports every content that could not be located.
func WithMissHook(fn MissFunc) HighlightOption {
	return func(o *highlightOptions) {
		o.onMiss = fn
	}
}

// Locate finds the first occurrence of each item's content in text. Items
// that are not found are skipped and their indexes returned as missed. The
// spans come back sorted by Start; equal starts keep input order. A match
// must begin on a rune boundary of text.
func Locate(text string, items []CheckedContent) (spans []Span, missed []int) {
	spans = make([]Span, 0, len(items))
	for i, item := range items {
		at := indexAtRuneStart(text, item.Content)
		if at < 0 {
			missed = append(missed, i)
			continue
		}
		start := utf8.RuneCountInString(text[:at])
		g, _ := item.Grade()
		spans = append(spans, Span{
			Start:      start,
			End:        start + utf8.RuneCountInString(item.Content),
			Evaluation: item.Evaluation,
			Grade:      g,
			Reason:     item.Reason,
			Content:    item.Content,
		})
	}
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})
	return spans, missed
}

func indexAtRuneStart(text, sub string) int {
	offset := 0
	for {
		at := strings.Index(text[offset:], sub)
		if at < 0 {
			return -1
		}
		at += offset
		if at == len(text) || utf8.RuneStart(text[at]) {
			return at
		}
		offset = at + 1
	}
}

// Highlight annotates text with the located items.
//
// The walk keeps a single cursor: for each span it emits the text between the
// cursor and the span start, then the span content, then moves the cursor to
// the span end. Overlapping spans are not resolved. When a span starts before
// the cursor the in-between slice is taken with its bounds swapped, so
// overlapping text is repeated rather than dropped.
func Highlight(text string, items []CheckedContent, opts ...HighlightOption) Annotation {
	var o highlightOptions
	for _, opt := range opts {
		opt(&o)
	}

	spans, missed := Locate(text, items)
	if o.onMiss != nil {
		for _, i := range missed {
			o.onMiss(i, items[i])
		}
	}

	ann := Annotation{Text: text, Spans: spans, Missed: missed}
	if len(spans) == 0 {
		ann.Segments = []Segment{{Kind: SegmentPlain, Text: text}}
		return ann
	}

	runes := []rune(text)
	segments := make([]Segment, 0, 2*len(spans)+1)
	last := 0
	for _, sp := range spans {
		if gap := substring(runes, last, sp.Start); gap != "" {
			segments = append(segments, Segment{Kind: SegmentPlain, Text: gap})
		}
		segments = append(segments, Segment{
			Kind:       SegmentAnnotated,
			Text:       sp.Content,
			Evaluation: sp.Evaluation,
			Grade:      sp.Grade,
			Reason:     sp.Reason,
		})
		last = sp.End
	}
	if tail := substring(runes, last, len(runes)); tail != "" {
		segments = append(segments, Segment{Kind: SegmentPlain, Text: tail})
	}

	ann.Segments = segments
	ann.Highlighted = true
	return ann
}

// substring clamps both bounds into the text and swaps them when from > to.
func substring(runes []rune, from, to int) string {
	from = clamp(from, 0, len(runes))
	to = clamp(to, 0, len(runes))
	if from > to {
		from, to = to, from
	}
	return string(runes[from:to])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Strip concatenates segment text, dropping all annotation metadata.
func Strip(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

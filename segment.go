package tagf

import "strings"

// Segment is a contiguous run of text annotated with the styles that
// were open while it was read. Styles are ordered outermost first.
type Segment struct {
	Text   string
	Styles []Style
}

// Has reports whether style applies to the segment.
func (s Segment) Has(style Style) bool {
	for _, have := range s.Styles {
		if have == style {
			return true
		}
	}
	return false
}

// Segments is the ordered, left-to-right chain of segments a parse
// produces.
type Segments []Segment

// Text concatenates the segment texts in order. For a chain produced by
// Parse this reconstructs every text-token payload of the input; tags
// contribute nothing.
func (segs Segments) Text() string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.Text)
	}
	return b.String()
}

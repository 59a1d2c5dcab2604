package tagf

// Style is a markup-level formatting attribute applied to a span of text.
type Style uint8

const (
	// StyleBold is the <b>...</b> tag.
	StyleBold Style = iota
)

// styleOrder fixes the order in which the scanner tries tag candidates.
// Extending the vocabulary means adding a Style constant, its entries
// here and in styleNames, and a Styles attribute for the renderer.
var styleOrder = [...]Style{StyleBold}

var styleNames = [...]string{
	StyleBold: "b",
}

// TagName returns the name used inside angle brackets, e.g. "b".
func (s Style) TagName() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return ""
}

func (s Style) String() string {
	switch s {
	case StyleBold:
		return "bold"
	}
	return "unknown"
}

package applebooks

// AnnotationStyle is the raw ZANNOTATIONSTYLE color code. The code is carried
// through extraction untouched; naming it is a display concern only.
type AnnotationStyle int64

const (
	AnnotationStyleUnderline AnnotationStyle = 1
	AnnotationStyleGreen     AnnotationStyle = 2
	AnnotationStyleBlue      AnnotationStyle = 3
	AnnotationStyleYellow    AnnotationStyle = 4
	AnnotationStylePink      AnnotationStyle = 5
	AnnotationStylePurple    AnnotationStyle = 6
)

// StyleName returns a human-readable name for a color code, empty for nil.
func StyleName(code *int64) string {
	if code == nil {
		return ""
	}
	switch AnnotationStyle(*code) {
	case AnnotationStyleUnderline:
		return "underline"
	case AnnotationStyleGreen:
		return "green"
	case AnnotationStyleBlue:
		return "blue"
	case AnnotationStyleYellow:
		return "yellow"
	case AnnotationStylePink:
		return "pink"
	case AnnotationStylePurple:
		return "purple"
	default:
		return "unknown"
	}
}

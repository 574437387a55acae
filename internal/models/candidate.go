package models

// MarkerStyle selects which directive marker character a file's
// templating dialect uses.
type MarkerStyle int

const (
	// HashStyle files introduce directives with '#'.
	HashStyle MarkerStyle = iota
	// PercentStyle files (stylesheets) introduce directives with '%'.
	PercentStyle
)

// Marker returns the directive marker character for the style.
func (s MarkerStyle) Marker() byte {
	if s == PercentStyle {
		return '%'
	}
	return '#'
}

// String returns the string representation of MarkerStyle.
func (s MarkerStyle) String() string {
	switch s {
	case HashStyle:
		return "hash"
	case PercentStyle:
		return "percent"
	default:
		return "unknown"
	}
}

// CandidateFile is a discovered file whose extension marks it as preprocessable
type CandidateFile struct {
	Path    string      // Walker path, forward-slash separated
	RelPath string      // Path relative to the scan root, forward-slash separated
	Ext     string      // Matched allow-list suffix (e.g. ".css")
	Style   MarkerStyle // Marker style resolved from Ext
}

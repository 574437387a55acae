package models

// Violation is a candidate file that still contains an unresolved directive line.
// Line, Directive and Text describe the first offending line only.
type Violation struct {
	Path      string // Root-relative path, forward-slash separated
	Line      int    // 1-based line number of the first offending line
	Directive string // Matched keyword without its marker (e.g. "ifdef")
	Text      string // Offending line with the line terminator removed
}

// ViolationSet is an insertion-ordered set of violations keyed by path.
// The first violation recorded for a path wins; later ones are dropped.
type ViolationSet struct {
	seen  map[string]struct{}
	items []Violation
}

// NewViolationSet creates an empty ViolationSet
func NewViolationSet() *ViolationSet {
	return &ViolationSet{seen: make(map[string]struct{})}
}

// Add records v unless its path is already present.
// Returns true if v was added.
func (s *ViolationSet) Add(v Violation) bool {
	if _, exists := s.seen[v.Path]; exists {
		return false
	}
	s.seen[v.Path] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Items returns a copy of the violations in first-seen order
func (s *ViolationSet) Items() []Violation {
	out := make([]Violation, len(s.items))
	copy(out, s.items)
	return out
}

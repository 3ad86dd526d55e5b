package utils

// IDFilter drops records that were already emitted.
// Ids are compared exactly: Klingon spelling is case-sensitive.
type IDFilter struct {
	seen map[string]bool
}

// NewIDFilter creates an empty filter.
func NewIDFilter() *IDFilter {
	return &IDFilter{seen: make(map[string]bool)}
}

// ShouldInclude returns true the first time id is seen and false afterwards.
func (f *IDFilter) ShouldInclude(id string) bool {
	if f.seen[id] {
		return false
	}
	f.seen[id] = true
	return true
}

// Len is the number of distinct ids seen so far.
func (f *IDFilter) Len() int {
	return len(f.seen)
}

package bstring

// Contains reports whether pattern occurs in s. An empty pattern is always
// contained.
func (s *String) Contains(pattern string) bool {
	p := Literal(pattern)
	if p.IsEmpty() || s.Equal(p) {
		return true
	}
	if s.Len() < p.Len() {
		return false
	}
	for i := 0; i+p.Len() <= s.Len(); i++ {
		if s.Slice(i, i+p.Len()).Equal(p) {
			return true
		}
	}
	return false
}

// Find returns the index of the first occurrence of pattern. It reports
// false for an empty pattern, a pattern longer than s, or no match.
func (s *String) Find(pattern string) (int, bool) {
	if len(pattern) == 0 || len(pattern) > s.Len() {
		return 0, false
	}
	for i := 0; i+len(pattern) <= s.Len(); i++ {
		if s.matchAt(i, pattern) {
			return i, true
		}
	}
	return 0, false
}

// FindChar returns the index of the first byte equal to byte(c).
func (s *String) FindChar(c rune) (int, bool) {
	target := byte(c)
	for i, b := range s.Bytes() {
		if b == target {
			return i, true
		}
	}
	return 0, false
}

// matchAt reports whether pattern occurs at index. The caller guarantees
// index+len(pattern) <= Len().
func (s *String) matchAt(index int, pattern string) bool {
	b := s.Bytes()
	for j := range len(pattern) {
		if b[index+j] != pattern[j] {
			return false
		}
	}
	return true
}

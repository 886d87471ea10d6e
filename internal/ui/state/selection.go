package state

// Selection tracks the highlighted candidate row.
//
// Movement is bounded by the live candidate count as well as MaxSuggestions,
// so the index can never point past the end of a short list once Clamp has
// seen the current count.
type Selection struct {
	index int
}

// Index returns the highlighted row.
func (s *Selection) Index() int {
	return s.index
}

// MoveUp moves the highlight one row up.
func (s *Selection) MoveUp() bool {
	if s.index <= 0 {
		return false
	}
	s.index--
	return true
}

// MoveDown moves the highlight one row down within the first count rows.
func (s *Selection) MoveDown(count int) bool {
	if s.index >= lastRow(count) {
		return false
	}
	s.index++
	return true
}

// Clamp pulls the highlight back inside a list of count candidates.
func (s *Selection) Clamp(count int) bool {
	last := lastRow(count)
	old := s.index
	if s.index > last {
		s.index = last
	}
	if s.index < 0 {
		s.index = 0
	}
	return s.index != old
}

func lastRow(count int) int {
	if count > MaxSuggestions {
		count = MaxSuggestions
	}
	if count <= 0 {
		return 0
	}
	return count - 1
}

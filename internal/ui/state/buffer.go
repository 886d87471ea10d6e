package state

// Buffer is the editable prompt line. Text and cursor are rune indexed and the
// cursor always satisfies 0 <= cursor <= len(text).
type Buffer struct {
	text   []rune
	cursor int
}

// Text returns the current contents.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Cursor returns the rune offset of the insertion point.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Insert places r at the cursor and advances the cursor past it.
func (b *Buffer) Insert(r rune) {
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = r
	b.cursor++
}

// InsertText inserts every rune of s in order. It reports whether anything
// was inserted.
func (b *Buffer) InsertText(s string) bool {
	inserted := false
	for _, r := range s {
		b.Insert(r)
		inserted = true
	}
	return inserted
}

// DeleteBackward removes the rune before the cursor.
func (b *Buffer) DeleteBackward() bool {
	if b.cursor == 0 {
		return false
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
	return true
}

// MoveLeft moves the cursor one rune towards the start.
func (b *Buffer) MoveLeft() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	return true
}

// MoveRight moves the cursor one rune towards the end.
func (b *Buffer) MoveRight() bool {
	if b.cursor >= len(b.text) {
		return false
	}
	b.cursor++
	return true
}

// Package lineedit holds the single line being typed at the shell prompt.
package lineedit

// DefaultMaxLen is used when a line is created without a positive capacity.
const DefaultMaxLen = 127

// Line is a fixed-capacity rune buffer with an insertion cursor.
// Runes in [0, Len()) are valid and 0 <= Cursor() <= Len() always holds.
type Line struct {
	text   []rune
	length int
	cursor int
}

func New(maxLen int) *Line {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	return &Line{text: make([]rune, maxLen)}
}

func (l *Line) MaxLen() int { return len(l.text) }

func (l *Line) Len() int { return l.length }

func (l *Line) Cursor() int { return l.cursor }

func (l *Line) Full() bool { return l.length == len(l.text) }

func (l *Line) String() string { return string(l.text[:l.length]) }

// Runes returns a copy of the valid part of the buffer.
func (l *Line) Runes() []rune {
	out := make([]rune, l.length)
	copy(out, l.text[:l.length])
	return out
}

// Insert writes text at the cursor, one rune at a time. Once the line is
// full every remaining rune of text is dropped. It reports whether the line
// changed.
func (l *Line) Insert(text string) bool {
	changed := false
	for _, r := range text {
		if l.length == len(l.text) {
			break
		}
		if l.cursor < l.length {
			copy(l.text[l.cursor+1:l.length+1], l.text[l.cursor:l.length])
		}
		l.text[l.cursor] = r
		l.length++
		l.cursor++
		changed = true
	}
	return changed
}

// Backspace removes the rune before the cursor.
func (l *Line) Backspace() bool {
	if l.cursor == 0 {
		return false
	}
	copy(l.text[l.cursor-1:l.length-1], l.text[l.cursor:l.length])
	l.length--
	l.cursor--
	return true
}

// Delete removes the rune under the cursor.
func (l *Line) Delete() bool {
	if l.cursor == l.length {
		return false
	}
	copy(l.text[l.cursor:l.length-1], l.text[l.cursor+1:l.length])
	l.length--
	return true
}

func (l *Line) Left() bool {
	if l.cursor == 0 {
		return false
	}
	l.cursor--
	return true
}

func (l *Line) Right() bool {
	if l.cursor == l.length {
		return false
	}
	l.cursor++
	return true
}

func (l *Line) Home() bool {
	if l.cursor == 0 {
		return false
	}
	l.cursor = 0
	return true
}

func (l *Line) End() bool {
	if l.cursor == l.length {
		return false
	}
	l.cursor = l.length
	return true
}

// Clear empties the line and keeps the buffer.
func (l *Line) Clear() bool {
	if l.length == 0 && l.cursor == 0 {
		return false
	}
	l.length = 0
	l.cursor = 0
	return true
}

// Take hands the current buffer over to the caller and starts a fresh one.
// The returned slice is never referenced by the line again.
func (l *Line) Take() []rune {
	out := l.text[:l.length:l.length]
	l.text = make([]rune, len(l.text))
	l.length = 0
	l.cursor = 0
	return out
}

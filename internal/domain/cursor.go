package domain

import m "github.com/mouse-blink/lox/internal/model"

// char is a source character paired with its offset.
type char struct {
	offset int
	r      rune
}

// cursor iterates over the characters of a source with two characters of
// lookahead.
type cursor struct {
	src       *m.Source
	pos       int // offset of the next character to load into the lookahead
	lookahead [2]*char
}

func newCursor(src *m.Source) *cursor {
	c := &cursor{src: src}
	c.lookahead[0] = c.load()
	c.lookahead[1] = c.load()

	return c
}

func (c *cursor) load() *char {
	r, ok := c.src.At(c.pos)
	if !ok {
		return nil
	}

	ch := &char{offset: c.pos, r: r}
	c.pos++

	return ch
}

// peek returns the next character without consuming it.
func (c *cursor) peek() *char {
	return c.lookahead[0]
}

// peek2 returns the character after the next one without consuming it.
func (c *cursor) peek2() *char {
	return c.lookahead[1]
}

// next consumes and returns the next character, nil at end of input.
func (c *cursor) next() *char {
	ch := c.lookahead[0]
	c.lookahead[0] = c.lookahead[1]
	c.lookahead[1] = c.load()

	return ch
}

// advance consumes the next character and reports whether there was one.
func (c *cursor) advance() bool {
	return c.next() != nil
}

// match consumes the next character if it is expected.
func (c *cursor) match(expected rune) bool {
	if ch := c.peek(); ch != nil && ch.r == expected {
		c.advance()
		return true
	}

	return false
}

// skip consumes characters while pred holds and returns them.
func (c *cursor) skip(pred func(rune) bool) []rune {
	var skipped []rune

	for ch := c.peek(); ch != nil && pred(ch.r); ch = c.peek() {
		skipped = append(skipped, ch.r)
		c.advance()
	}

	return skipped
}

// offset returns the offset of the next character, or the source length at
// end of input.
func (c *cursor) offset() int {
	if ch := c.peek(); ch != nil {
		return ch.offset
	}

	return c.src.Len()
}

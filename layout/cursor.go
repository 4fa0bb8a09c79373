package layout

import "golang.org/x/exp/constraints"

type (
	//Rules represents platform specific layout rules
	Rules struct {
		//EmptySize is the size expected for an aggregate without fields
		EmptySize uint64
	}

	//Cursor tracks the running offset of a sequential field placement
	Cursor[T constraints.Unsigned] struct {
		offset   T
		maxAlign T
	}
)

var (
	//GoRules Go compiler rules, zero-field struct occupies no memory
	GoRules = Rules{EmptySize: 0}
	//CRules C/C++ rules, every object occupies at least one byte
	CRules = Rules{EmptySize: 1}
)

// AlignTo returns the smallest multiple of align that is greater or equal to offset
func AlignTo[T constraints.Unsigned](offset, align T) T {
	if align <= 1 {
		return offset
	}
	if rem := offset % align; rem != 0 {
		return offset - rem + align
	}
	return offset
}

// NewCursor creates a cursor at offset 0
func NewCursor[T constraints.Unsigned]() *Cursor[T] {
	return &Cursor[T]{maxAlign: 1}
}

// Place returns aligned offset for the next field and advances the cursor past it
func (c *Cursor[T]) Place(size, align T) T {
	offset := AlignTo(c.offset, align)
	if align > c.maxAlign {
		c.maxAlign = align
	}
	c.offset = offset + size
	return offset
}

// Offset returns current unpadded offset
func (c *Cursor[T]) Offset() T {
	return c.offset
}

// Align returns the largest alignment placed so far, at least 1
func (c *Cursor[T]) Align() T {
	return c.maxAlign
}

// Size returns the aggregate size: the cursor rounded up to the largest alignment
func (c *Cursor[T]) Size(rules Rules) T {
	size := AlignTo(c.offset, c.maxAlign)
	if size == 0 {
		return T(rules.EmptySize)
	}
	return size
}

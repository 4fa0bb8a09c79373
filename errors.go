package fieldwalk

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind categorizes reflection failures
type Kind string

const (
	KindNotReflectable   Kind = "not_reflectable"
	KindUnexpectedLayout Kind = "unexpected_layout"
	KindInconsistentSlot Kind = "inconsistent_slot"
	KindUnwrittenSlot    Kind = "unwritten_slot"
	KindInvalidVisitor   Kind = "invalid_visitor"
)

var (
	//ErrNotReflectable type is not a plain aggregate
	ErrNotReflectable = &Error{Kind: KindNotReflectable, Index: -1}
	//ErrUnexpectedLayout computed layout does not match the actual one
	ErrUnexpectedLayout = &Error{Kind: KindUnexpectedLayout, Index: -1}
	//ErrInconsistentSlot slot was already recorded with a different field type
	ErrInconsistentSlot = &Error{Kind: KindInconsistentSlot, Index: -1}
	//ErrUnwrittenSlot slot was read before being recorded
	ErrUnwrittenSlot = &Error{Kind: KindUnwrittenSlot, Index: -1}
	//ErrInvalidVisitor visitor was nil
	ErrInvalidVisitor = &Error{Kind: KindInvalidVisitor, Index: -1}
)

// Error represents reflection failure
type Error struct {
	Kind   Kind
	Type   reflect.Type
	Index  int
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("reflection failed, ")
	switch e.Kind {
	case KindNotReflectable:
		b.WriteString("type must be aggregate-initializable")
	case KindUnexpectedLayout:
		b.WriteString("unexpected layout")
	case KindInconsistentSlot:
		b.WriteString("inconsistent slot")
	case KindUnwrittenSlot:
		b.WriteString("unwritten slot")
	case KindInvalidVisitor:
		b.WriteString("invalid visitor")
	default:
		b.WriteString(string(e.Kind))
	}
	if e.Type != nil {
		b.WriteString(": ")
		b.WriteString(e.Type.String())
	}
	if e.Index >= 0 {
		fmt.Fprintf(&b, " field #%d", e.Index)
	}
	if e.Detail != "" {
		b.WriteString(" - ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Is reports whether target is an error of the same kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func newError(kind Kind, t reflect.Type, index int, format string, args ...interface{}) *Error {
	ret := &Error{Kind: kind, Type: t, Index: index}
	if format != "" {
		ret.Detail = fmt.Sprintf(format, args...)
	}
	return ret
}

func notReflectable(t reflect.Type, format string, args ...interface{}) *Error {
	return newError(KindNotReflectable, t, -1, format, args...)
}

func unexpectedLayout(t reflect.Type, index int, format string, args ...interface{}) *Error {
	return newError(KindUnexpectedLayout, t, index, format, args...)
}

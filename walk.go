package fieldwalk

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

type (
	//Visitor receives a typed pointer to every visited field, in declaration order
	Visitor interface {
		VisitField(ref interface{})
	}

	//VisitorFunc adapts a function to Visitor
	VisitorFunc func(ref interface{})
)

// VisitField implements Visitor
func (f VisitorFunc) VisitField(ref interface{}) {
	f(ref)
}

// ForEachField calls visitor once per field of the supplied struct, in declaration order,
// with a pointer to that field. A pointer to struct is visited in place, a struct value is
// copied first so writes through the references do not reach the caller's value.
// Layout is discovered once per (struct type, visitor type, options) and reused afterwards.
// No field is visited when discovery fails.
func ForEachField(instance interface{}, visitor Visitor, opts ...Option) error {
	if visitor == nil {
		return newError(KindInvalidVisitor, reflect.TypeOf(instance), -1, "visitor was nil")
	}
	base, owner, err := addressOf(instance)
	if err != nil {
		return err
	}
	aLayout, err := plan(owner, reflect.TypeOf(visitor), newOptions(opts))
	if err != nil {
		return err
	}
	aLayout.visit(base, visitor)
	return nil
}

// MustForEachField calls ForEachField, it panics if the type is not reflectable
func MustForEachField(instance interface{}, visitor Visitor, opts ...Option) {
	if err := ForEachField(instance, visitor, opts...); err != nil {
		panic(err)
	}
}

// Each calls fn with a pointer to every field of instance
func Each[T any](instance *T, fn func(ref interface{}), opts ...Option) error {
	return ForEachField(instance, VisitorFunc(fn), opts...)
}

// Inspect returns layout discovered for the owner and visitor types
func Inspect(owner reflect.Type, visitor reflect.Type, opts ...Option) (*Layout, error) {
	if owner != nil && owner.Kind() == reflect.Ptr {
		owner = owner.Elem()
	}
	return plan(owner, visitor, newOptions(opts))
}

func addressOf(instance interface{}) (unsafe.Pointer, reflect.Type, error) {
	if instance == nil {
		return nil, nil, notReflectable(nil, "instance was nil")
	}
	rType := reflect.TypeOf(instance)
	switch rType.Kind() {
	case reflect.Ptr:
		if rType.Elem().Kind() != reflect.Struct {
			return nil, rType, notReflectable(rType, "expected pointer to struct")
		}
		ptr := xunsafe.AsPointer(instance)
		if ptr == nil {
			return nil, rType, notReflectable(rType, "nil pointer")
		}
		return ptr, rType.Elem(), nil
	case reflect.Struct:
		copied := reflect.New(rType)
		copied.Elem().Set(reflect.ValueOf(instance))
		return unsafe.Pointer(copied.Pointer()), rType, nil
	}
	return nil, rType, notReflectable(rType, "expected struct or pointer to struct")
}

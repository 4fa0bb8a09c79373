package visitor

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/fieldwalk"
	"github.com/viant/xunsafe"
)

var structVisitorType = reflect.TypeOf(&StructVisitor{})

// StructVisitor iterates struct fields in declaration order
type StructVisitor struct {
	value  interface{}
	ptr    unsafe.Pointer
	leaves []*fieldwalk.Leaf
}

// StructVisitorOf creates a visitor over (field name, field value) pairs
func StructVisitorOf(value interface{}, opts ...fieldwalk.Option) (Visitor[string, interface{}], error) {
	visitor, err := newStructVisitor(value, opts)
	if err != nil {
		return nil, err
	}
	return visitor.Visit, nil
}

// FieldVisitorOf creates a visitor over (field position, field pointer) pairs
func FieldVisitorOf(value interface{}, opts ...fieldwalk.Option) (Visitor[int, interface{}], error) {
	visitor, err := newStructVisitor(value, opts)
	if err != nil {
		return nil, err
	}
	return visitor.VisitRefs, nil
}

func newStructVisitor(value interface{}, opts []fieldwalk.Option) (*StructVisitor, error) {
	if value == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got nil")
	}
	valueType := reflect.TypeOf(value)
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		structType = valueType.Elem()
	case reflect.Struct:
		structType = valueType
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	aLayout, err := fieldwalk.Inspect(structType, structVisitorType, opts...)
	if err != nil {
		return nil, err
	}
	ptr := xunsafe.AsPointer(value)
	if ptr == nil {
		return nil, fmt.Errorf("expected non nil pointer, got %T", value)
	}
	return &StructVisitor{value: value, ptr: ptr, leaves: aLayout.Leaves()}, nil
}

// Visit iterates over struct fields, calling the provided function with each field name and value.
func (w *StructVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	for _, leaf := range w.leaves {
		continueVisit, err := f(leaf.Name, leaf.Value(w.ptr))
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// VisitRefs iterates over struct fields, calling the provided function with field position and pointer.
func (w *StructVisitor) VisitRefs(f func(key int, element interface{}) (bool, error)) error {
	for i, leaf := range w.leaves {
		continueVisit, err := f(i, leaf.Ref(w.ptr))
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

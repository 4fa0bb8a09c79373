package fieldwalk

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

type (
	//Accessor returns typed reference to a field of the aggregate located at base
	Accessor func(base unsafe.Pointer) interface{}

	//Accessors represents per field accessors in declaration order
	Accessors []Accessor

	//Slot represents discovered field position
	Slot struct {
		Index    int
		Name     string
		Type     reflect.Type
		Size     uintptr
		Align    uintptr
		Declared uintptr //member offset reported by the runtime
		xField   *xunsafe.Field
		accessor Accessor
	}
)

// Ref returns a typed pointer (*FieldType) to the field of the aggregate located at base
func (s *Slot) Ref(base unsafe.Pointer) interface{} {
	if s.accessor != nil {
		return s.accessor(base)
	}
	return s.xField.Addr(base)
}

// Value returns the field value of the aggregate located at base
func (s *Slot) Value(base unsafe.Pointer) interface{} {
	return s.xField.Value(base)
}

// IsGenerated returns true if slot uses generated accessor
func (s *Slot) IsGenerated() bool {
	return s.accessor != nil
}

// checkAccessor verifies that the generated accessor addresses this slot on the aggregate at base
func (s *Slot) checkAccessor(owner reflect.Type, base unsafe.Pointer, offset uintptr) error {
	if s.accessor == nil {
		return nil
	}
	ref := s.accessor(base)
	if ref == nil {
		return newError(KindInconsistentSlot, owner, s.Index, "accessor returned nil")
	}
	if actual := reflect.TypeOf(ref); actual != reflect.PtrTo(s.Type) {
		return newError(KindInconsistentSlot, owner, s.Index, "accessor returned %v, expected *%v", actual, s.Type)
	}
	if actual := uintptr(xunsafe.AsPointer(ref)) - uintptr(base); actual != offset {
		return newError(KindInconsistentSlot, owner, s.Index, "accessor addresses offset %d, expected %d", actual, offset)
	}
	return nil
}

func newSlot(owner reflect.Type, index int, fieldType reflect.Type) *Slot {
	field := owner.Field(index)
	ret := &Slot{
		Index:    index,
		Name:     field.Name,
		Type:     fieldType,
		Size:     fieldType.Size(),
		Align:    uintptr(fieldType.FieldAlign()),
		Declared: field.Offset,
		xField:   xunsafe.NewField(field),
	}
	if accessors, ok := registry.Get(owner); ok && index < len(accessors) {
		ret.accessor = accessors[index]
	}
	return ret
}

// Package flat copies struct fields into a flat byte buffer at their discovered offsets and back.
package flat

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/fieldwalk"
	"github.com/viant/xunsafe"
)

// ErrPointerField is returned for types holding pointers, their bytes cannot live outside the heap graph
var ErrPointerField = fmt.Errorf("flat: type holds pointers")

type (
	encoder struct {
		buffer []byte
		leaves []*fieldwalk.Leaf
		index  int
	}

	decoder struct {
		data   []byte
		leaves []*fieldwalk.Leaf
		index  int
	}
)

// VisitField implements fieldwalk.Visitor
func (e *encoder) VisitField(ref interface{}) {
	leaf := e.leaves[e.index]
	e.index++
	copy(e.buffer[leaf.Offset:leaf.Offset+leaf.Size], bytesOf(ref, leaf.Size))
}

// VisitField implements fieldwalk.Visitor
func (d *decoder) VisitField(ref interface{}) {
	leaf := d.leaves[d.index]
	d.index++
	copy(bytesOf(ref, leaf.Size), d.data[leaf.Offset:leaf.Offset+leaf.Size])
}

func bytesOf(ref interface{}, size uintptr) []byte {
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(xunsafe.AsPointer(ref)), size)
}

// Size returns encoded size of the supplied struct type
func Size(t reflect.Type) (int, error) {
	aLayout, err := layoutOf(t, reflect.TypeOf(&encoder{}))
	if err != nil {
		return 0, err
	}
	return int(aLayout.Size), nil
}

// Encode returns struct fields copied at their offsets, padding bytes are zero
func Encode(instance interface{}) ([]byte, error) {
	aLayout, err := layoutOf(reflect.TypeOf(instance), reflect.TypeOf(&encoder{}))
	if err != nil {
		return nil, err
	}
	anEncoder := &encoder{buffer: make([]byte, aLayout.Size), leaves: aLayout.Leaves()}
	if err = fieldwalk.ForEachField(instance, anEncoder, fieldwalk.WithNested(true)); err != nil {
		return nil, err
	}
	return anEncoder.buffer, nil
}

// Decode reads fields of dest (pointer to struct) from data produced by Encode
func Decode(data []byte, dest interface{}) error {
	destType := reflect.TypeOf(dest)
	if destType == nil || destType.Kind() != reflect.Ptr {
		return fmt.Errorf("flat: expected pointer to struct, got %T", dest)
	}
	aLayout, err := layoutOf(destType, reflect.TypeOf(&decoder{}))
	if err != nil {
		return err
	}
	if uintptr(len(data)) != aLayout.Size {
		return fmt.Errorf("flat: invalid data size for %v: expected %d, got %d", aLayout.Type, aLayout.Size, len(data))
	}
	return fieldwalk.ForEachField(dest, &decoder{data: data, leaves: aLayout.Leaves()}, fieldwalk.WithNested(true))
}

func layoutOf(t reflect.Type, visitor reflect.Type) (*fieldwalk.Layout, error) {
	aLayout, err := fieldwalk.Inspect(t, visitor, fieldwalk.WithNested(true))
	if err != nil {
		return nil, err
	}
	for _, leaf := range aLayout.Leaves() {
		if hasPointers(leaf.Type) {
			return nil, fmt.Errorf("%w: %v.%v %v", ErrPointerField, aLayout.Type, leaf.Name, leaf.Type)
		}
	}
	return aLayout, nil
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	}
	return true
}

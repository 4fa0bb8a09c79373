package fieldwalk

import (
	"reflect"
	"unsafe"

	"github.com/viant/fieldwalk/internal/cache"
	"github.com/viant/fieldwalk/layout"
	"go.uber.org/zap"
)

type (
	//Field represents a placed field
	Field struct {
		*Slot
		Offset uintptr
		Nested *Layout //set only when nested aggregates are visited field by field
	}

	//Leaf represents a visited field, Base is the offset of the aggregate declaring the field
	//and Offset the field offset, both relative to the outermost aggregate
	Leaf struct {
		*Slot
		Base   uintptr
		Offset uintptr
	}

	//Layout represents a discovered and validated aggregate layout
	Layout struct {
		Type   reflect.Type
		Size   uintptr
		Align  uintptr
		Fields []*Field
	}

	planKey struct {
		owner    reflect.Type
		visitor  reflect.Type
		nested   bool
		rules    layout.Rules
		recorder *Recorder
	}
)

var plans = cache.NewSyncMap[planKey, *Layout]()

// Count returns number of top level fields
func (l *Layout) Count() int {
	return len(l.Fields)
}

// Leaves returns fields in visit order
func (l *Layout) Leaves() []*Leaf {
	var result []*Leaf
	l.leaves(0, &result)
	return result
}

func (l *Layout) leaves(base uintptr, result *[]*Leaf) {
	for _, field := range l.Fields {
		if field.Nested != nil {
			field.Nested.leaves(base+field.Offset, result)
			continue
		}
		*result = append(*result, &Leaf{Slot: field.Slot, Base: base, Offset: base + field.Offset})
	}
}

// Ref returns a typed pointer to the leaf field of the outermost aggregate located at outer
func (l *Leaf) Ref(outer unsafe.Pointer) interface{} {
	return l.Slot.Ref(unsafe.Add(outer, l.Base))
}

// Value returns the leaf field value of the outermost aggregate located at outer
func (l *Leaf) Value(outer unsafe.Pointer) interface{} {
	return l.Slot.Value(unsafe.Add(outer, l.Base))
}

// Record returns layout record
func (l *Layout) Record() *layout.Record {
	ret := layout.NewRecord(l.Type.String(), uint64(l.Size), uint64(l.Align))
	for _, field := range l.Fields {
		ret.AddField(field.Name, field.Type.String(), uint64(field.Offset), uint64(field.Size), uint64(field.Align))
	}
	return ret
}

func (l *Layout) visit(base unsafe.Pointer, visitor Visitor) {
	for _, field := range l.Fields {
		if field.Nested != nil {
			field.Nested.visit(unsafe.Add(base, field.Offset), visitor)
			continue
		}
		visitor.VisitField(field.Ref(base))
	}
}

// plan returns cached layout, discovering it on first use
func plan(owner, visitor reflect.Type, o *options) (*Layout, error) {
	key := planKey{owner: owner, visitor: visitor, nested: o.nested, rules: o.rules, recorder: o.recorder}
	if ret, ok := plans.Get(key); ok {
		return ret, nil
	}
	count, err := countFields(owner, visitor, o.recorder)
	if err != nil {
		return nil, err
	}
	ret, err := walkOffsets(owner, visitor, count, o)
	if err != nil {
		Logger().Warn("layout mismatch", zap.Stringer("type", owner), zap.Error(err))
		return nil, err
	}
	ret, _ = plans.PutIfAbsent(key, ret)
	Logger().Debug("discovered layout",
		zap.Stringer("type", owner),
		zap.Int("fields", count),
		zap.Uintptr("size", ret.Size),
		zap.Uintptr("align", ret.Align))
	return ret, nil
}

// walkOffsets places recorded slots sequentially and validates the result against the actual layout
func walkOffsets(owner, visitor reflect.Type, count int, o *options) (*Layout, error) {
	cursor := layout.NewCursor[uintptr]()
	ret := &Layout{Type: owner, Fields: make([]*Field, 0, count)}
	zero := unsafe.Pointer(reflect.New(owner).Pointer())
	for i := 0; i < count; i++ {
		slot, err := o.recorder.Read(owner, i, visitor)
		if err != nil {
			return nil, err
		}
		offset := cursor.Place(slot.Size, slot.Align)
		if offset != slot.Declared {
			return nil, unexpectedLayout(owner, i, "computed offset %d, declared %d", offset, slot.Declared)
		}
		if err = slot.checkAccessor(owner, zero, offset); err != nil {
			return nil, err
		}
		field := &Field{Slot: slot, Offset: offset}
		if o.nested && slot.Type.Kind() == reflect.Struct {
			if field.Nested, err = plan(slot.Type, visitor, o); err != nil {
				return nil, err
			}
		}
		ret.Fields = append(ret.Fields, field)
	}
	expect := cursor.Size(o.rules)
	if expect != owner.Size() {
		return nil, unexpectedLayout(owner, -1, "computed size %d, actual %d", expect, owner.Size())
	}
	ret.Size = expect
	ret.Align = cursor.Align()
	return ret, nil
}

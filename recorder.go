package fieldwalk

import (
	"reflect"

	"github.com/viant/fieldwalk/internal/cache"
)

type (
	slotKey struct {
		owner   reflect.Type
		index   int
		visitor reflect.Type
	}

	//Recorder records discovered slots keyed by (aggregate type, slot index, visitor type).
	//A slot once written is never replaced.
	Recorder struct {
		slots *cache.SyncMap[slotKey, *Slot]
	}
)

var defaultRecorder = NewRecorder()

// Write records fieldType for the supplied key, the first write wins
func (r *Recorder) Write(owner reflect.Type, index int, visitor reflect.Type, fieldType reflect.Type) (*Slot, error) {
	if owner == nil || owner.Kind() != reflect.Struct {
		return nil, notReflectable(owner, "slot owner is not a struct")
	}
	if index < 0 || index >= owner.NumField() {
		return nil, newError(KindInconsistentSlot, owner, index, "slot index out of range")
	}
	if fieldType == nil {
		return nil, newError(KindInconsistentSlot, owner, index, "field type was nil")
	}
	key := slotKey{owner: owner, index: index, visitor: visitor}
	slot, ok := r.slots.Get(key)
	if !ok {
		slot, _ = r.slots.PutIfAbsent(key, newSlot(owner, index, fieldType))
	}
	if slot.Type != fieldType {
		return nil, newError(KindInconsistentSlot, owner, index, "recorded %v, got %v", slot.Type, fieldType)
	}
	return slot, nil
}

// Read returns a recorded slot
func (r *Recorder) Read(owner reflect.Type, index int, visitor reflect.Type) (*Slot, error) {
	slot, ok := r.slots.Get(slotKey{owner: owner, index: index, visitor: visitor})
	if !ok {
		return nil, newError(KindUnwrittenSlot, owner, index, "")
	}
	return slot, nil
}

// Len returns number of recorded slots
func (r *Recorder) Len() int {
	return r.slots.Len()
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{slots: cache.NewSyncMap[slotKey, *Slot]()}
}

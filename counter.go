package fieldwalk

import (
	"reflect"
	"unsafe"

	"go.uber.org/zap"
)

type outcome int

const (
	tooFew outcome = iota
	wellFormed
	tooMany
)

// construct attempts to build owner from k probes following the unkeyed composite literal rule:
// every field takes exactly one positional value
func construct(owner, visitor reflect.Type, k int, recorder *Recorder) (outcome, error) {
	numField := owner.NumField()
	if k > numField {
		return tooMany, nil
	}
	instance := reflect.New(owner)
	base := unsafe.Pointer(instance.Pointer())
	for i := 0; i < k; i++ {
		field := owner.Field(i)
		slot, value, err := newProbe(owner, visitor, i, recorder).materialize(field.Type)
		if err != nil {
			return tooFew, err
		}
		reflect.ValueOf(slot.xField.Addr(base)).Elem().Set(value)
	}
	if k < numField {
		return tooFew, nil
	}
	return wellFormed, nil
}

// countFields returns the unique number of probes the aggregate can be constructed from,
// slots 0..count-1 are recorded as a side effect
func countFields(owner, visitor reflect.Type, recorder *Recorder) (int, error) {
	if owner == nil {
		return -1, notReflectable(nil, "type was nil")
	}
	if owner.Kind() != reflect.Struct {
		return -1, notReflectable(owner, "%v is not an aggregate", owner.Kind())
	}
	count := -1
	for k := 0; ; k++ {
		result, err := construct(owner, visitor, k, recorder)
		if err != nil {
			Logger().Warn("probe failed", zap.Stringer("type", owner), zap.Int("probes", k), zap.Error(err))
			return -1, notReflectable(owner, "probe %d: %v", k, err)
		}
		switch result {
		case tooFew:
			continue
		case wellFormed:
			if count != -1 {
				return -1, notReflectable(owner, "constructible from both %d and %d values", count, k)
			}
			count = k
		case tooMany:
			if count == -1 {
				return -1, notReflectable(owner, "no construction attempt succeeded")
			}
			return count, nil
		}
	}
}

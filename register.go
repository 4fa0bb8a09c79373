package fieldwalk

import (
	"reflect"

	"github.com/viant/fieldwalk/internal/cache"
	"go.uber.org/zap"
)

var registry = cache.NewSyncMap[reflect.Type, Accessors]()

// Register binds generated accessors to the aggregate type.
// Registration has to happen before the type is first visited, generated code does it in init.
// Registering the same accessors again is a no-op, different ones fail with ErrInconsistentSlot.
// Accessors are verified against discovered offsets when the type is first visited.
func Register(owner reflect.Type, accessors Accessors) error {
	if owner == nil || owner.Kind() != reflect.Struct {
		return notReflectable(owner, "only struct types can be registered")
	}
	if len(accessors) != owner.NumField() {
		return newError(KindInconsistentSlot, owner, -1, "expected %d accessors, got %d", owner.NumField(), len(accessors))
	}
	actual, stored := registry.PutIfAbsent(owner, accessors)
	if !stored {
		for i := range actual {
			if !sameAccessor(actual[i], accessors[i]) {
				return newError(KindInconsistentSlot, owner, i, "already registered with a different accessor")
			}
		}
		return nil
	}
	Logger().Debug("registered accessors", zap.Stringer("type", owner), zap.Int("fields", len(accessors)))
	return nil
}

func sameAccessor(x, y Accessor) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return reflect.ValueOf(x).Pointer() == reflect.ValueOf(y).Pointer()
}

// MustRegister registers accessors or panics
func MustRegister(owner reflect.Type, accessors Accessors) {
	if err := Register(owner, accessors); err != nil {
		panic(err)
	}
}

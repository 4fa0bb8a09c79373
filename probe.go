package fieldwalk

import "reflect"

// probe is a placeholder for one positional value of a construction attempt
type probe struct {
	owner    reflect.Type
	visitor  reflect.Type
	index    int
	recorder *Recorder
}

// materialize converts the probe into the value required at its position;
// a successful conversion records the slot, a conflicting one fails without picking a type
func (p *probe) materialize(target reflect.Type) (*Slot, reflect.Value, error) {
	if target == nil {
		return nil, reflect.Value{}, notReflectable(p.owner, "no type at position %d", p.index)
	}
	slot, err := p.recorder.Write(p.owner, p.index, p.visitor, target)
	if err != nil {
		return nil, reflect.Value{}, err
	}
	return slot, reflect.Zero(target), nil
}

func newProbe(owner, visitor reflect.Type, index int, recorder *Recorder) *probe {
	return &probe{owner: owner, visitor: visitor, index: index, recorder: recorder}
}

package fieldwalk

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountFields(t *testing.T) {
	var testCases = []struct {
		description string
		owner       reflect.Type
		expect      int
		expectError bool
	}{
		{description: "two fields", owner: reflect.TypeOf(charInt{}), expect: 2},
		{description: "single field", owner: reflect.TypeOf(single{}), expect: 1},
		{description: "empty", owner: reflect.TypeOf(empty{}), expect: 0},
		{description: "mixed", owner: reflect.TypeOf(mixed{}), expect: 9},
		{description: "nested counted as top level", owner: reflect.TypeOf(segment{}), expect: 3},
		{description: "named float", owner: reflect.TypeOf(celsius(0)), expectError: true},
		{description: "pointer", owner: reflect.TypeOf(&charInt{}), expectError: true},
		{description: "nil", owner: nil, expectError: true},
	}
	visitor := reflect.TypeOf(&offsetRecorder{})
	for _, testCase := range testCases {
		recorder := NewRecorder()
		count, err := countFields(testCase.owner, visitor, recorder)
		if testCase.expectError {
			assert.ErrorIs(t, err, ErrNotReflectable, testCase.description)
			assert.Equal(t, 0, recorder.Len(), testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, count, testCase.description)
		assert.Equal(t, testCase.expect, recorder.Len(), testCase.description)
		for i := 0; i < count; i++ {
			slot, err := recorder.Read(testCase.owner, i, visitor)
			require.NoError(t, err, testCase.description)
			assert.Equal(t, testCase.owner.Field(i).Type, slot.Type, testCase.description)
		}
		_, err = recorder.Read(testCase.owner, count, visitor)
		assert.ErrorIs(t, err, ErrUnwrittenSlot, testCase.description)
	}
}

func TestConstruct(t *testing.T) {
	owner := reflect.TypeOf(charInt{})
	recorder := NewRecorder()
	var outcomes []outcome
	for k := 0; k < 4; k++ {
		result, err := construct(owner, nil, k, recorder)
		require.NoError(t, err)
		outcomes = append(outcomes, result)
	}
	assert.Equal(t, []outcome{tooFew, tooFew, wellFormed, tooMany}, outcomes)
}

func TestCountFields_ConflictingSlot(t *testing.T) {
	recorder := NewRecorder()
	owner := reflect.TypeOf(charInt{})
	_, err := recorder.Write(owner, 1, nil, reflect.TypeOf(int64(0)))
	require.NoError(t, err)

	_, err = countFields(owner, nil, recorder)
	assert.ErrorIs(t, err, ErrNotReflectable)

	_, err = Inspect(owner, nil, WithRecorder(recorder))
	assert.ErrorIs(t, err, ErrNotReflectable)
}

func TestProbe_Materialize(t *testing.T) {
	recorder := NewRecorder()
	owner := reflect.TypeOf(charInt{})
	slot, value, err := newProbe(owner, nil, 0, recorder).materialize(reflect.TypeOf(uint8(0)))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), value.Interface())
	assert.Equal(t, "A", slot.Name)

	_, _, err = newProbe(owner, nil, 0, recorder).materialize(reflect.TypeOf(""))
	assert.ErrorIs(t, err, ErrInconsistentSlot)
	_, _, err = newProbe(owner, nil, 1, recorder).materialize(nil)
	assert.ErrorIs(t, err, ErrNotReflectable)
}

package reflectx

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/walkology"
)

func TestSlice(t *testing.T) {
	var testCases = []struct {
		description string
		sliceType   reflect.Type
		items       []interface{}
		expect      interface{}
	}{
		{description: "fits", sliceType: reflect.TypeOf([]int{}), items: []interface{}{1, 2}, expect: []int{1, 2}},
		{description: "widened", sliceType: reflect.TypeOf([]int{}), items: []interface{}{1, "a"}, expect: []interface{}{1, "a"}},
		{description: "nil item widens", sliceType: reflect.TypeOf([]int{}), items: []interface{}{nil}, expect: []interface{}{nil}},
		{description: "nil into pointer", sliceType: reflect.TypeOf([]*int{}), items: []interface{}{nil}, expect: []*int{nil}},
		{description: "empty", sliceType: reflect.TypeOf([]string{}), items: nil, expect: []string{}},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Slice(testCase.sliceType, testCase.items), testCase.description)
	}
}

func TestArray(t *testing.T) {
	arrayType := reflect.TypeOf([2]int{})
	assert.Equal(t, [2]int{3, 4}, Array(arrayType, []interface{}{3, 4}))
	assert.Equal(t, [2]interface{}{3, "x"}, Array(arrayType, []interface{}{3, "x"}))
}

func TestMap(t *testing.T) {
	mapType := reflect.TypeOf(map[string]int{})
	actual, err := Map(mapType, []interface{}{"a", "b"}, []interface{}{1, 2})
	require.Nil(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, actual)

	actual, err = Map(mapType, []interface{}{"a", 1}, []interface{}{1, 2})
	require.Nil(t, err)
	assert.Equal(t, map[interface{}]int{"a": 1, 1: 2}, actual)

	actual, err = Map(mapType, []interface{}{"a", "a"}, []interface{}{1, 2})
	require.Nil(t, err)
	assert.Equal(t, map[string]int{"a": 2}, actual, "last colliding key wins")

	setType := reflect.TypeOf(map[int]struct{}{})
	actual, err = Map(setType, []interface{}{1, 2}, nil)
	require.Nil(t, err)
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}}, actual)

	_, err = Map(setType, []interface{}{[]int{1}}, nil)
	assert.True(t, errors.Is(err, walkology.ErrUnhashable))
}

func TestHashable(t *testing.T) {
	assert.True(t, Hashable(nil))
	assert.True(t, Hashable("a"))
	assert.True(t, Hashable([2]int{}))
	assert.False(t, Hashable([]int{}))
	assert.False(t, Hashable(map[string]int{}))
	assert.False(t, Hashable([1]interface{}{[]int{}}))
}

package walkology

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDOf(t *testing.T) {
	slice := []int{1, 2, 3}
	aMap := map[string]int{"a": 1}
	value := 1
	ch := make(chan int)

	var testCases = []struct {
		description string
		value       interface{}
		expect      bool
	}{
		{description: "nil", value: nil},
		{description: "int", value: 1},
		{description: "string", value: "abc"},
		{description: "struct", value: struct{ A int }{A: 1}},
		{description: "array", value: [2]int{1, 2}},
		{description: "empty slice", value: []int{}},
		{description: "nil slice", value: []int(nil)},
		{description: "nil map", value: map[string]int(nil)},
		{description: "nil pointer", value: (*int)(nil)},
		{description: "zero size pointer", value: &struct{}{}},
		{description: "zero size slice", value: make([]struct{}, 3)},
		{description: "slice", value: slice, expect: true},
		{description: "map", value: aMap, expect: true},
		{description: "pointer", value: &value, expect: true},
		{description: "chan", value: ch, expect: true},
	}

	for _, testCase := range testCases {
		_, ok := IDOf(testCase.value)
		assert.Equal(t, testCase.expect, ok, testCase.description)
	}
}

func TestIDOf_Identity(t *testing.T) {
	slice := []int{1, 2, 3}
	first, _ := IDOf(slice)
	second, _ := IDOf(slice)
	assert.Equal(t, first, second, "same slice")

	sub, _ := IDOf(slice[:2])
	assert.NotEqual(t, first, sub, "shorter view of the same storage")

	other, _ := IDOf([]int{1, 2, 3})
	assert.NotEqual(t, first, other, "equal but distinct")

	aMap := map[string]int{}
	mapID, _ := IDOf(aMap)
	sameMapID, _ := IDOf(aMap)
	assert.Equal(t, mapID, sameMapID)
	assert.Equal(t, "map[string]int", mapID.Type().String())
	assert.Contains(t, first.String(), "[]int@")
	assert.Equal(t, "<none>", NodeID{}.String())
}

package visitor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceVisitorOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		expect      []interface{}
	}{
		{description: "interface slice", value: []interface{}{"a", 1, 3.14, true}, expect: []interface{}{"a", 1, 3.14, true}},
		{description: "typed slice", value: []int{1, 2}, expect: []interface{}{1, 2}},
		{description: "array", value: [2]string{"x", "y"}, expect: []interface{}{"x", "y"}},
		{description: "empty", value: []string{}, expect: nil},
	}
	for _, testCase := range testCases {
		visit, err := SliceVisitorOf(testCase.value)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		var clone []interface{}
		err = visit(func(index int, element interface{}) (bool, error) {
			clone = append(clone, element)
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, clone, testCase.description)
	}
}

func TestSliceVisitor_Stop(t *testing.T) {
	visit, err := SliceVisitorOf([]int{1, 2, 3})
	assert.Nil(t, err)
	count := 0
	err = visit(func(index int, element interface{}) (bool, error) {
		count++
		return index < 1, nil
	})
	assert.Nil(t, err)
	assert.Equal(t, 2, count)

	errVisit := errors.New("visit failed")
	err = visit(func(index int, element interface{}) (bool, error) {
		return false, errVisit
	})
	assert.Equal(t, errVisit, err)

	_, err = SliceVisitorOf("abc")
	assert.NotNil(t, err)
}

package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapVisitorOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		expect      map[interface{}]interface{}
	}{
		{
			description: "string keyed",
			value:       map[string]interface{}{"abc": true, "def": 1},
			expect:      map[interface{}]interface{}{"abc": true, "def": 1},
		},
		{
			description: "reflection",
			value:       map[float64]float64{1: 1.5},
			expect:      map[interface{}]interface{}{1.0: 1.5},
		},
		{
			description: "set",
			value:       map[int]struct{}{3: {}},
			expect:      map[interface{}]interface{}{3: struct{}{}},
		},
	}
	for _, testCase := range testCases {
		visit, err := MapVisitorOf(testCase.value)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		cloned := map[interface{}]interface{}{}
		err = visit(func(key interface{}, element interface{}) (bool, error) {
			cloned[key] = element
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, cloned, testCase.description)
	}

	_, err := MapVisitorOf([]int{1})
	assert.NotNil(t, err)
}

package walkology

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_CheckDepth(t *testing.T) {
	var testCases = []struct {
		description string
		options     []Option
		depth       int
		expectErr   bool
	}{
		{description: "unlimited", depth: 1000},
		{description: "within limit", options: []Option{WithMaxDepth(2)}, depth: 2},
		{description: "above limit", options: []Option{WithMaxDepth(2)}, depth: 3, expectErr: true},
		{description: "nil option", options: []Option{nil}, depth: 3},
		{description: "last wins", options: []Option{WithMaxDepth(1), WithMaxDepth(5)}, depth: 5},
	}
	for _, testCase := range testCases {
		err := NewOptions(testCase.options...).CheckDepth(testCase.depth)
		if !testCase.expectErr {
			assert.Nil(t, err, testCase.description)
			continue
		}
		assert.True(t, errors.Is(err, ErrDepthExceeded), testCase.description)
	}
}

func TestIdentity(t *testing.T) {
	value := []int{1}
	actual, err := Identity(value)
	assert.Nil(t, err)
	assert.Equal(t, value, actual)
}

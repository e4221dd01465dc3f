package generic_test

import (
	"errors"
	"fmt"

	"github.com/viant/walkology"
	"github.com/viant/walkology/generic"
)

type rect struct {
	W, H int
}

func ExamplePostwalk() {
	doubled, err := generic.Postwalk(func(value interface{}) (interface{}, error) {
		if i, ok := value.(int); ok {
			return i * 2, nil
		}
		return value, nil
	}, []rect{{W: 1, H: 2}, {W: 3, H: 4}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(doubled)
	// Output: [{2 4} {6 8}]
}

func ExampleWalk_cyclic() {
	type node struct {
		Next *node
	}
	head := &node{}
	head.Next = head
	_, err := generic.Walk(walkology.Identity, walkology.Identity, head)
	fmt.Println(errors.Is(err, walkology.ErrCyclicStructure))
	// Output: true
}

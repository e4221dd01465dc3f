package visitor

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StructVisitor_Visit(t *testing.T) {

	type Employee struct {
		ID      int
		Name    string
		Company string
		secret  string
		Cache   map[string]int `format:"ignore=true"`
	}

	emp := &Employee{ID: 1, Name: "John Doe", Company: "OpenAI", secret: "s", Cache: map[string]int{"a": 1}}

	for _, value := range []interface{}{emp, *emp} {
		visit, err := StructVisitorOf(value)
		if !assert.Nil(t, err) {
			return
		}
		var clone = &Employee{}
		var names []string
		err = visit(func(key string, value interface{}) (bool, error) {
			names = append(names, key)
			switch key {
			case "ID":
				clone.ID = value.(int)
			case "Name":
				clone.Name = value.(string)
			case "Company":
				clone.Company = value.(string)
			case "secret":
				clone.secret = value.(string)
			}
			return true, nil
		})
		assert.Nil(t, err)
		assert.Equal(t, []string{"ID", "Name", "Company", "secret"}, names)
		assert.EqualValues(t, &Employee{ID: 1, Name: "John Doe", Company: "OpenAI", secret: "s"}, clone)
	}

	_, err := StructVisitorOf(1)
	assert.NotNil(t, err)
}

func TestStructOf(t *testing.T) {
	type Foo struct {
		Id   int
		name string
		Skip bool `format:"ignore=true"`
	}
	aStruct := StructOf(reflect.TypeOf(Foo{}))
	assert.Same(t, aStruct, StructOf(reflect.TypeOf(Foo{})))
	assert.Len(t, aStruct.Fields, 3)
	assert.Nil(t, aStruct.Lookup("Missing"))
	assert.True(t, aStruct.Lookup("Skip").Ignore)

	foo := &Foo{}
	ptr := reflect.ValueOf(foo).UnsafePointer()
	aStruct.Lookup("name").Value(ptr).Set(reflect.ValueOf("abc"))
	aStruct.Lookup("Id").Value(ptr).SetInt(7)
	assert.Equal(t, &Foo{Id: 7, name: "abc"}, foo)
}

package collection

import (
	"reflect"

	"github.com/viant/walkology"
	"github.com/viant/walkology/internal/log"
	"github.com/viant/walkology/internal/reflectx"
)

type walker struct {
	prewalk  walkology.Func
	postwalk walkology.Func
	visited  *walkology.Visited
	options  *walkology.Options
}

// Walk walks root depth first: prewalk is applied to a node before its children are walked,
// postwalk to the node rebuilt from walked children. Only Sequence, Mapping, Tuple and Set
// shaped values have children, decided on the prewalked value.
//
// A node identity reached twice fails the walk with walkology.CyclicStructureError,
// this includes a value shared by two branches. Errors returned by prewalk or postwalk
// are returned unchanged.
//
// Scalars, strings, arrays and structs carry no identity, so a prewalk that keeps wrapping
// such a leaf in a fresh container never repeats a node; use walkology.WithMaxDepth to bound it.
func Walk(prewalk, postwalk walkology.Func, root interface{}, opts ...walkology.Option) (interface{}, error) {
	w := &walker{
		prewalk:  prewalk,
		postwalk: postwalk,
		visited:  walkology.NewVisited(),
		options:  walkology.NewOptions(opts...),
	}
	ret, err := w.walk(root, 0)
	log.Tracef("collection walk entered %d identities", w.visited.Len())
	return ret, err
}

// Prewalk walks root with fn applied before children
func Prewalk(fn walkology.Func, root interface{}, opts ...walkology.Option) (interface{}, error) {
	return Walk(fn, walkology.Identity, root, opts...)
}

// Postwalk walks root with fn applied after children
func Postwalk(fn walkology.Func, root interface{}, opts ...walkology.Option) (interface{}, error) {
	return Walk(walkology.Identity, fn, root, opts...)
}

func (w *walker) walk(node interface{}, depth int) (interface{}, error) {
	if err := w.visited.Enter(node); err != nil {
		return nil, err
	}
	if err := w.options.CheckDepth(depth); err != nil {
		log.Debugf("collection walk aborted: %v", err)
		return nil, err
	}
	prewalked, err := w.prewalk(node)
	if err != nil {
		return nil, err
	}
	innerWalked, err := w.descend(prewalked, depth+1)
	if err != nil {
		return nil, err
	}
	return w.postwalk(innerWalked)
}

func (w *walker) descend(value interface{}, depth int) (interface{}, error) {
	shape := ShapeOf(value)
	if !shape.IsContainer() {
		return value, nil
	}
	rValue := reflect.ValueOf(value)
	switch shape {
	case Sequence:
		if rValue.IsNil() {
			return value, nil
		}
		items, err := w.walkItems(rValue, depth)
		if err != nil {
			return nil, err
		}
		return reflectx.Slice(rValue.Type(), items), nil
	case Tuple:
		items, err := w.walkItems(rValue, depth)
		if err != nil {
			return nil, err
		}
		return reflectx.Array(rValue.Type(), items), nil
	case Mapping:
		if rValue.IsNil() {
			return value, nil
		}
		keys, values, err := w.walkEntries(rValue, depth, true)
		if err != nil {
			return nil, err
		}
		return reflectx.Map(rValue.Type(), keys, values)
	case Set:
		if rValue.IsNil() {
			return value, nil
		}
		keys, _, err := w.walkEntries(rValue, depth, false)
		if err != nil {
			return nil, err
		}
		return reflectx.Map(rValue.Type(), keys, nil)
	}
	return value, nil
}

func (w *walker) walkItems(rValue reflect.Value, depth int) ([]interface{}, error) {
	items := make([]interface{}, rValue.Len())
	for i := range items {
		item, err := w.walk(rValue.Index(i).Interface(), depth)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

func (w *walker) walkEntries(rValue reflect.Value, depth int, withValues bool) ([]interface{}, []interface{}, error) {
	keys := make([]interface{}, 0, rValue.Len())
	var values []interface{}
	if withValues {
		values = make([]interface{}, 0, rValue.Len())
	}
	iter := rValue.MapRange()
	for iter.Next() {
		key, err := w.walk(iter.Key().Interface(), depth)
		if err != nil {
			return nil, nil, err
		}
		keys = append(keys, key)
		if !withValues {
			continue
		}
		value, err := w.walk(iter.Value().Interface(), depth)
		if err != nil {
			return nil, nil, err
		}
		values = append(values, value)
	}
	return keys, values, nil
}

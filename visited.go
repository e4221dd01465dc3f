package walkology

import "github.com/viant/walkology/internal/log"

// Visited tracks node identities entered during a single walk.
// It only grows; a walker creates one per top-level call and drops it on return.
type Visited struct {
	ids map[NodeID]struct{}
}

// NewVisited returns an empty visited set
func NewVisited() *Visited {
	return &Visited{ids: make(map[NodeID]struct{})}
}

// Enter marks value as visited, it returns CyclicStructureError if value identity was already entered.
// Values without identity are always accepted.
func (v *Visited) Enter(value interface{}) error {
	id, ok := IDOf(value)
	if !ok {
		return nil
	}
	if _, seen := v.ids[id]; seen {
		log.Debugf("walk aborted, %v already visited", id)
		return &CyclicStructureError{Type: id.Type(), ID: id}
	}
	v.ids[id] = struct{}{}
	return nil
}

// Len returns number of entered identities
func (v *Visited) Len() int {
	return len(v.ids)
}

package generic

import (
	"github.com/viant/walkology"
	"github.com/viant/walkology/encoding/stream"
	"github.com/viant/walkology/internal/log"
)

// Walker walks any value its serializer can encode
type Walker struct {
	serializer walkology.Serializer
	options    []walkology.Option
}

// New creates a walker decomposing values with serializer
func New(serializer walkology.Serializer, opts ...walkology.Option) *Walker {
	return &Walker{serializer: serializer, options: opts}
}

// Walk walks root depth first: every reference the serializer encodes is replaced by
// postwalk(walk(prewalk(reference))). A reference identity met twice fails the walk with
// walkology.CyclicStructureError. Errors returned by the walk functions or the serializer
// are returned unchanged.
//
// Values without identity (scalars, strings, arrays, structs) are never reported as
// repeated: a prewalk wrapping such a leaf in a fresh container recurses until
// walkology.WithMaxDepth stops it, so set a limit when the walk functions grow the graph.
func (w *Walker) Walk(prewalk, postwalk walkology.Func, root interface{}) (interface{}, error) {
	s := &session{
		serializer: w.serializer,
		prewalk:    prewalk,
		postwalk:   postwalk,
		visited:    walkology.NewVisited(),
		options:    walkology.NewOptions(w.options...),
	}
	ret, err := s.perform(root, false, 0)
	log.Tracef("generic walk entered %d identities", s.visited.Len())
	return ret, err
}

// Prewalk walks root with fn applied before children
func (w *Walker) Prewalk(fn walkology.Func, root interface{}) (interface{}, error) {
	return w.Walk(fn, walkology.Identity, root)
}

// Postwalk walks root with fn applied after children
func (w *Walker) Postwalk(fn walkology.Func, root interface{}) (interface{}, error) {
	return w.Walk(walkology.Identity, fn, root)
}

// Walk walks root with the stream codec
func Walk(prewalk, postwalk walkology.Func, root interface{}, opts ...walkology.Option) (interface{}, error) {
	return New(stream.New(), opts...).Walk(prewalk, postwalk, root)
}

// Prewalk walks root with the stream codec, fn is applied before children
func Prewalk(fn walkology.Func, root interface{}, opts ...walkology.Option) (interface{}, error) {
	return New(stream.New(), opts...).Prewalk(fn, root)
}

// Postwalk walks root with the stream codec, fn is applied after children
func Postwalk(fn walkology.Func, root interface{}, opts ...walkology.Option) (interface{}, error) {
	return New(stream.New(), opts...).Postwalk(fn, root)
}

type session struct {
	serializer walkology.Serializer
	prewalk    walkology.Func
	postwalk   walkology.Func
	visited    *walkology.Visited
	options    *walkology.Options
}

// perform runs one marshal/unmarshal pass over value.
// With skipFirst the first reference met, value itself, is encoded in place.
func (s *session) perform(value interface{}, skipFirst bool, depth int) (interface{}, error) {
	p := &pass{session: s, skip: skipFirst, depth: depth}
	data, err := s.serializer.Marshal(value, p)
	if err != nil {
		return nil, err
	}
	return s.serializer.Unmarshal(data, p)
}

func (s *session) intercept(ref interface{}, depth int) ([]byte, error) {
	if err := s.visited.Enter(ref); err != nil {
		return nil, err
	}
	if err := s.options.CheckDepth(depth); err != nil {
		log.Debugf("generic walk aborted: %v", err)
		return nil, err
	}
	prewalked, err := s.prewalk(ref)
	if err != nil {
		return nil, err
	}
	innerWalked, err := s.perform(prewalked, true, depth+1)
	if err != nil {
		return nil, err
	}
	postwalked, err := s.postwalk(innerWalked)
	if err != nil {
		return nil, err
	}
	return s.serializer.Marshal(postwalked, nil)
}

// pass implements walkology.ReferenceHooks for a single perform call
type pass struct {
	session *session
	skip    bool
	depth   int
}

// OnReference substitutes a walked token for ref unless the one-shot skip flag is set
func (p *pass) OnReference(ref interface{}) ([]byte, bool, error) {
	if p.skip {
		p.skip = false
		return nil, false, nil
	}
	token, err := p.session.intercept(ref, p.depth)
	if err != nil {
		return nil, false, err
	}
	return token, true, nil
}

// OnToken decodes a token produced by OnReference
func (p *pass) OnToken(token []byte) (interface{}, error) {
	return p.session.serializer.Unmarshal(token, nil)
}

package walkology

//Option walk option
type Option func(o *Options)

//Options represents walk options
type Options struct {
	// MaxDepth limits nesting of walked nodes, zero means no limit
	MaxDepth int
}

//NewOptions returns options with supplied option applied
func NewOptions(opts ...Option) *Options {
	ret := &Options{}
	ret.Apply(opts...)
	return ret
}

//Apply applies options
func (o *Options) Apply(opts ...Option) {
	if len(opts) == 0 {
		return
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
}

// CheckDepth returns DepthExceededError when depth is above MaxDepth
func (o *Options) CheckDepth(depth int) error {
	if o.MaxDepth > 0 && depth > o.MaxDepth {
		return &DepthExceededError{Depth: depth, Limit: o.MaxDepth}
	}
	return nil
}

//WithMaxDepth limits walk nesting; a root node has depth zero
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

package wavefront

import "github.com/chazu/objmesh/pkg/mesh"

// Option configures geometry parsing.
type Option func(*options)

type options struct {
	boundsFromFirst bool
	maxVertices     int
}

func defaultOptions() options {
	return options{maxVertices: mesh.MaxVertices}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBoundsFromFirstVertex seeds the bounding box from the first position
// instead of the origin. Without it a mesh lying entirely on one side of an
// axis still reports 0 on that side.
func WithBoundsFromFirstVertex() Option {
	return func(o *options) {
		o.boundsFromFirst = true
	}
}

// WithMaxVertices lowers the distinct vertex limit. Values outside
// (0, mesh.MaxVertices] are ignored.
func WithMaxVertices(n int) Option {
	return func(o *options) {
		if n > 0 && n <= mesh.MaxVertices {
			o.maxVertices = n
		}
	}
}

package xrand

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/renproject/xrand/murmur3"
)

var defaultHash = NewHashFunction(murmur3.Hasher{})

// DefaultHash returns the process wide HashFunction. The implementation may
// change between versions; use NewHashFunction for a fixed one.
func DefaultHash() HashFunction {
	return defaultHash
}

const defaultSeedMultiplier = 238747617

// Counts default sources, standing in for a thread id in the seed.
var defaultSources uint64

// NewDefault returns a Source on the default engine seeded from a per-call id
// and the clock. This is the only non-reproducible way to build a Source.
func NewDefault() *Source {
	id := atomic.AddUint64(&defaultSources, 1)
	return NewSource(id*defaultSeedMultiplier + uint64(time.Now().UnixNano()))
}

type sourceKey struct{}

// WithSource returns a copy of ctx carrying src. The Source must only be used
// by one goroutine at a time.
func WithSource(ctx context.Context, src *Source) context.Context {
	return context.WithValue(ctx, sourceKey{}, src)
}

func FromContext(ctx context.Context) (*Source, bool) {
	src, ok := ctx.Value(sourceKey{}).(*Source)
	return src, ok && src != nil
}

// Default returns the Source carried by ctx, or a new default Source when
// there is none. The new Source is not remembered, so repeated calls on a ctx
// without a Source return different sources; use WithDefault to create one
// once and pass it on.
func Default(ctx context.Context) *Source {
	if src, ok := FromContext(ctx); ok {
		return src
	}
	return NewDefault()
}

// WithDefault returns ctx and its Source when ctx already carries one.
// Otherwise it creates a default Source and returns a copy of ctx carrying it.
func WithDefault(ctx context.Context) (context.Context, *Source) {
	if src, ok := FromContext(ctx); ok {
		return ctx, src
	}
	src := NewDefault()
	return WithSource(ctx, src), src
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mphnd

import "code.hybscloud.com/mphnd/substrate"

// frame is one link of the handler shadow stack. It is a flat struct
// rather than an interface sum: Find's hot loop switches on frame.kind
// without a type assertion, and the three frame flavors (ordinary
// handler, under, mask) differ only in which fields they populate, never
// in behavior Find can't express with a couple of extra fields.
//
// The original C substrate keeps these in a manually managed arena so a
// captured continuation can be replayed without leaving dangling
// pointers into a freed stack. Go's garbage collector makes that arena
// unnecessary: a frame stays alive for exactly as long as something
// still reaches it, whether that's the live shadow stack or a captured
// resume token holding onto its parent chain.
type frame struct {
	parent *frame
	kind   *Kind
	hdata  any

	// prompt is non-nil for frames installed by PromptHandler; it is the
	// substrate delimiter that Yield/MYield transfer control through.
	// Frames installed by LinearHandler, Under, and Mask leave it nil.
	prompt *substrate.Prompt

	// underTo is only meaningful on frames with kind == underKind: the
	// kind Find fast-forwards to (and then past) when it reaches this
	// frame, regardless of which kind the search itself is for.
	underTo *Kind
	// maskOf and maskFrom are only meaningful on frames with kind ==
	// maskKind: maskOf is the kind this mask shadows, maskFrom is the
	// ordinal below which the mask is inert (see find.go).
	maskOf   *Kind
	maskFrom int
}

// Context anchors one execution context's handler shadow stack. The
// original substrate keeps this in thread-local storage; Go has no
// portable thread-local, and goroutine-local storage is an anti-pattern,
// so callers instead own a *Context explicitly and thread it through
// their own goroutine (or, per the concurrency model, keep one per
// logical fiber — see the errgroup-based demo in cmd/mphnd-demo).
type Context struct {
	top *frame
}

// NewContext returns a fresh execution context with an empty shadow
// stack.
func NewContext() *Context {
	return &Context{}
}

// Handle is an opaque reference to a located handler frame, returned by
// Find and consumed by the yield path. It carries no exported fields so
// user code cannot forge one or inspect frame internals directly.
type Handle struct {
	f *frame
}

// Valid reports whether the handle refers to an actual frame.
func (h Handle) Valid() bool { return h.f != nil }

// Kind returns the effect kind the located frame was installed for.
func (h Handle) Kind() *Kind {
	if h.f == nil {
		return nil
	}
	return h.f.kind
}

// Data returns the handler-private data the frame was installed with.
func (h Handle) Data() any {
	if h.f == nil {
		return nil
	}
	return h.f.hdata
}

func (ctx *Context) push(f *frame) {
	f.parent = ctx.top
	ctx.top = f
}

func (ctx *Context) pop(f *frame) {
	if ctx.top != f {
		panic("mphnd: handler frame popped out of order")
	}
	ctx.top = f.parent
}

// Top returns a handle to the innermost frame, or an invalid handle if
// the shadow stack is empty.
func (ctx *Context) Top() Handle {
	return Handle{ctx.top}
}

// Parent returns a handle to h's parent frame, or ctx.Top() if h is
// invalid — the same "no handler names the top" convention the original
// substrate's mph_parent uses so callers can walk the stack starting
// from either a located frame or the empty handle.
func Parent(ctx *Context, h Handle) Handle {
	if h.f == nil {
		return ctx.Top()
	}
	return Handle{h.f.parent}
}

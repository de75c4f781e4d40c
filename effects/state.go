// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effects

import "code.hybscloud.com/mphnd"

var stateKind = mphnd.NewKind("effects.state")

// Get reads the current value of the nearest enclosing State handler's
// cell. It answers directly off the handler frame's data — state never
// needs to capture a continuation, so this never installs a prompt.
func Get[S any](ctx *mphnd.Context) S {
	h := mphnd.Find(ctx, stateKind)
	if !h.Valid() {
		panic("effects: Get performed with no State handler in scope")
	}
	cell := h.Data().(*S)
	return *cell
}

// Put replaces the nearest enclosing State handler's cell.
func Put[S any](ctx *mphnd.Context, v S) {
	h := mphnd.Find(ctx, stateKind)
	if !h.Valid() {
		panic("effects: Put performed with no State handler in scope")
	}
	cell := h.Data().(*S)
	*cell = v
}

// Modify applies f to the current state in place.
func Modify[S any](ctx *mphnd.Context, f func(S) S) {
	Put(ctx, f(Get[S](ctx)))
}

// RunState installs a State[S] handler around body, starting at init,
// and returns body's result together with the final state.
func RunState[S, A any](ctx *mphnd.Context, init S, body func(*mphnd.Context) A) (A, S) {
	cell := init
	result := mphnd.LinearHandler(ctx, stateKind, &cell, func(ctx *mphnd.Context, hdata *S, _ struct{}) A {
		return body(ctx)
	}, struct{}{})
	return result, cell
}

// EvalState discards the final state.
func EvalState[S, A any](ctx *mphnd.Context, init S, body func(*mphnd.Context) A) A {
	a, _ := RunState(ctx, init, body)
	return a
}

// ExecState discards body's result.
func ExecState[S, A any](ctx *mphnd.Context, init S, body func(*mphnd.Context) A) S {
	_, s := RunState(ctx, init, body)
	return s
}

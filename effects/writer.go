// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effects

import "code.hybscloud.com/mphnd"

var writerKind = mphnd.NewKind("effects.writer")

// Tell appends w to the nearest enclosing Writer handler's log.
func Tell[W any](ctx *mphnd.Context, w W) {
	h := mphnd.Find(ctx, writerKind)
	if !h.Valid() {
		panic("effects: Tell performed with no Writer handler in scope")
	}
	log := h.Data().(*[]W)
	*log = append(*log, w)
}

// Pair bundles a computation's result with the writer output collected
// alongside it.
type Pair[A, W any] struct {
	Value  A
	Output []W
}

// Listen runs body and reports both its result and everything it told
// the writer during that run, in addition to letting the log propagate
// to any outer Writer handler as usual.
func Listen[W, A any](ctx *mphnd.Context, body func(*mphnd.Context) A) Pair[A, W] {
	var captured []W
	a := mphnd.LinearHandler(ctx, writerKind, &captured, func(ctx *mphnd.Context, _ *[]W, _ struct{}) A {
		return body(ctx)
	}, struct{}{})
	tellBatch(ctx, captured)
	return Pair[A, W]{Value: a, Output: captured}
}

// tellBatch forwards a batch of output to the enclosing handler in one
// call; used internally by Listen and Censor.
func tellBatch[W any](ctx *mphnd.Context, ws []W) {
	h := mphnd.Find(ctx, writerKind)
	if !h.Valid() {
		return
	}
	log := h.Data().(*[]W)
	*log = append(*log, ws...)
}

// Censor runs body, rewriting everything it told the writer through f
// before it reaches the enclosing handler.
func Censor[W, A any](ctx *mphnd.Context, f func(W) W, body func(*mphnd.Context) A) A {
	var captured []W
	a := mphnd.LinearHandler(ctx, writerKind, &captured, func(ctx *mphnd.Context, _ *[]W, _ struct{}) A {
		return body(ctx)
	}, struct{}{})
	for i := range captured {
		captured[i] = f(captured[i])
	}
	tellBatch(ctx, captured)
	return a
}

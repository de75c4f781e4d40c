// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effects

import "code.hybscloud.com/mphnd"

// Bracket acquires a resource, runs use with it, and always runs release
// afterward — whether use returns normally, throws (Throw/panic), or the
// engine unwinds through it. release sees whether use failed.
func Bracket[R, A any](ctx *mphnd.Context, acquire func(*mphnd.Context) R, use func(*mphnd.Context, R) A, release func(*mphnd.Context, R, bool)) A {
	r := acquire(ctx)
	failed := true
	defer func() {
		release(ctx, r, failed)
	}()
	a := use(ctx, r)
	failed = false
	return a
}

// OnError runs body and, only if it fails to complete normally (panics,
// including an mphnd unwind or an effects.Throw passing through),
// invokes cleanup before letting the failure continue to propagate.
// Unlike Bracket, a successful body triggers no extra call at all.
func OnError[A any](ctx *mphnd.Context, body func(*mphnd.Context) A, cleanup func(*mphnd.Context)) (result A) {
	ok := false
	defer func() {
		if !ok {
			cleanup(ctx)
		}
	}()
	result = body(ctx)
	ok = true
	return result
}

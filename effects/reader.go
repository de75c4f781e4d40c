// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effects

import "code.hybscloud.com/mphnd"

var readerKind = mphnd.NewKind("effects.reader")

// Ask reads the nearest enclosing Reader handler's environment.
func Ask[E any](ctx *mphnd.Context) E {
	h := mphnd.Find(ctx, readerKind)
	if !h.Valid() {
		panic("effects: Ask performed with no Reader handler in scope")
	}
	env := h.Data().(*E)
	return *env
}

// RunReader installs a Reader[E] handler supplying env around body.
func RunReader[E, A any](ctx *mphnd.Context, env E, body func(*mphnd.Context) A) A {
	return mphnd.LinearHandler(ctx, readerKind, &env, func(ctx *mphnd.Context, _ *E, _ struct{}) A {
		return body(ctx)
	}, struct{}{})
}

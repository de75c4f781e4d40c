// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mphnd

// Mask installs a scope frame that shadows one Find(kind) match beneath
// it, letting body reach past an enclosing handler of kind to whichever
// one sits beyond it. from gates the mask against Find's running
// mask-level counter (see find.go): a mask only takes effect once the
// counter already reached from, which is what lets several nested masks
// for the same kind compose — each naming how many masking levels are
// already open before it — without double-masking a single enclosing
// handler.
//
// The C source this engine is modeled on tags the frame it installs
// here with its own UNDER kind rather than a distinct MASK kind, so its
// search reads a mask frame through the under branch and the mask never
// takes effect. It is fixed here: the frame below carries maskKind, not
// underKind, so Find takes its mask branch for it (and a caller
// inspecting a handle's Kind sees the flavor actually installed).
func Mask[A any](ctx *Context, kind *Kind, from int, body func(*Context) A) A {
	f := &frame{kind: maskKind, maskOf: kind, maskFrom: from}
	ctx.push(f)
	defer ctx.pop(f)
	return body(ctx)
}

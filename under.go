// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mphnd

// Under installs a scope frame that hides the nearest frame of kind —
// and everything nested inside it — from every search performed while
// body runs, regardless of what kind each of those searches is for. It
// is the idiom a handler uses to re-perform its own effect and have the
// next outer handler for kind answer it instead of being caught by
// itself again — the delegation pattern that makes composable handlers
// for the same effect possible.
func Under[A any](ctx *Context, kind *Kind, body func(*Context) A) A {
	f := &frame{kind: underKind, underTo: kind}
	ctx.push(f)
	defer ctx.pop(f)
	return body(ctx)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mphnd

// LinearHandler installs a handler frame for kind with no prompt behind
// it, runs body(ctx, hdata, arg), and pops the frame on every exit path
// — normal return, panic, or unwind passing through. Operations
// performed against a linear frame must be resolved without ever
// yielding: the frame carries no capturable continuation, so a
// YieldTo/MYieldTo call that resolves to it panics rather than silently
// doing the wrong thing.
//
// Linear installation is the cheap, common case: a handler that always
// answers an effect immediately (Reader, the common case of State) never
// needs the shadow-switching machinery PromptHandler requires.
func LinearHandler[H, A, R any](ctx *Context, kind *Kind, hdata *H, body func(*Context, *H, A) R, arg A) (result R) {
	f := &frame{kind: kind, hdata: hdata}
	ctx.push(f)
	defer ctx.pop(f)
	return body(ctx, hdata, arg)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mphnd

import "code.hybscloud.com/mphnd/substrate"

// PromptHandler installs a handler frame for kind backed by a fresh
// prompt, runs body(ctx, hdata, arg) under it, and returns body's result
// — or, if an unwind targeting this exact installation passes through,
// the result of running that unwind's fn(hdata, arg) while hdata is
// still live, exactly as the C source's mph_start runs e.fun(hdata,
// e.arg) in its catch clause before hdata goes out of scope.
//
// Unlike LinearHandler, a frame installed this way can be the target of
// YieldTo/MYieldTo: the prompt gives the engine somewhere to capture the
// continuation from the yield site up to this call.
func PromptHandler[H, A, R any](ctx *Context, kind *Kind, hdata *H, body func(*Context, *H, A) R, arg A) (result R) {
	f := &frame{kind: kind, hdata: hdata}
	defer func() {
		if r := recover(); r != nil {
			if sig, ok := isUnwindFor(r, f); ok {
				result, _ = sig.fn(f.hdata, sig.arg).(R)
				return
			}
			panic(r)
		}
	}()
	raw := substrate.Run(func(p *substrate.Prompt) any {
		f.prompt = p
		ctx.push(f)
		defer ctx.pop(f)
		return body(ctx, hdata, arg)
	})
	return raw.(R)
}

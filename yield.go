// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mphnd

import "code.hybscloud.com/mphnd/substrate"

// ResumeToken is the linear handle a handler function receives when it
// is invoked through YieldTo or MYieldTo. Exactly one of Resume,
// ResumeTail, ResumeUnwind, or ResumeDrop must consume a token produced
// by YieldTo; a token produced by MYieldTo may be consumed more than
// once.
type ResumeToken[A any] struct {
	raw *substrate.ResumeToken
	// target is the frame the yield that produced this token was
	// captured from — the same frame a resume-side unwind must be
	// reported against so the matching PromptHandler install recognizes
	// it. See resume.go's translation of substrate.ErrUnwind.
	target *frame
}

func yieldTo[A, R any](ctx *Context, h Handle, fn func(tok *ResumeToken[A], hdata any, arg any) R, arg any, multi bool) A {
	if !h.Valid() {
		panic("mphnd: yield to an invalid handler")
	}
	target := h.f
	if target.prompt == nil {
		panic("mphnd: yield to a linear handler frame")
	}

	// Detach: shadow this frame and everything above it for the
	// duration of the handler call, which runs conceptually just
	// outside the prompt, at the scope the frame was installed in.
	yieldTop := ctx.top
	ctx.top = target.parent

	defer func() {
		// Reattach: repoint the frame's parent at whatever is current at
		// the resume site, so a later replay (multi-shot) or resume under
		// a different shadow stack sees the right ancestry, then restore
		// the caller's shadow stack.
		target.parent = ctx.top
		ctx.top = yieldTop
		if r := recover(); r != nil {
			if r == substrate.ErrUnwind {
				raiseUnwind(target, identityUnwind, nil)
			}
			panic(r)
		}
	}()

	raise := func(p *substrate.Prompt) func(*substrate.ResumeToken) any {
		return func(raw *substrate.ResumeToken) any {
			return fn(&ResumeToken[A]{raw: raw, target: target}, target.hdata, arg)
		}
	}(target.prompt)

	var result any
	if multi {
		result = substrate.MYield(target.prompt, raise)
	} else {
		result = substrate.Yield(target.prompt, raise)
	}
	return result.(A)
}

// YieldTo captures the continuation up to h, detaches the shadow stack
// down to h's parent, and calls fn with a one-shot resume token. fn runs
// synchronously, as the handler code "just outside" h's prompt; it must
// consume the token exactly once.
func YieldTo[A, R any](ctx *Context, h Handle, fn func(tok *ResumeToken[A], hdata any, arg any) R, arg any) A {
	return yieldTo(ctx, h, fn, arg, false)
}

// MYieldTo is YieldTo's multi-shot counterpart: fn's resume token may be
// consumed more than once, each time producing an independent replay of
// the captured continuation.
func MYieldTo[A, R any](ctx *Context, h Handle, fn func(tok *ResumeToken[A], hdata any, arg any) R, arg any) A {
	return yieldTo(ctx, h, fn, arg, true)
}

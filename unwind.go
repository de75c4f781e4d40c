// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mphnd

// unwindSignal is the panic value that carries an in-flight unwind from
// the yield site that raised it back out to the specific handler
// installation it targets. It is not an error: unwinding is ordinary,
// sealed control flow, never something an intervening frame is allowed
// to observe or catch by accident — only PromptHandler recognizes it,
// and only when its target is its own installation.
//
// fn and arg mirror the C source's mph_unwind_exception{target, fun,
// arg}: when the signal reaches its target's PromptHandler install, that
// install calls fn(hdata, arg) while hdata is still live and surfaces
// the result as the prompt's own result, exactly like the original's
// catch clause running e.fun(hdata, e.arg). Every unwind this package
// itself raises (ResumeUnwind, ResumeDrop) uses identityUnwind, the same
// "just hand back the payload" function the C source's own
// mph_unwind_fun is; a future FINALLY driver would supply its own fn to
// run cleanup against hdata instead.
type unwindSignal struct {
	target *frame
	fn     func(hdata any, arg any) any
	arg    any
}

// identityUnwind is the unwind function every resume-side unwind in this
// package raises with: it performs no cleanup of its own, just hands
// back whatever payload the resume call carried (always nil for
// ResumeUnwind/ResumeDrop, since neither takes a value).
func identityUnwind(_ any, arg any) any { return arg }

// raiseUnwind panics with an unwindSignal targeting target, carrying fn
// and arg for the eventual catch site to run.
func raiseUnwind(target *frame, fn func(hdata any, arg any) any, arg any) {
	panic(&unwindSignal{target: target, fn: fn, arg: arg})
}

// isUnwindFor reports whether r is an unwind signal targeting f, the
// check PromptHandler's recover clause makes before deciding whether to
// swallow a panic or let it keep propagating.
func isUnwindFor(r any, f *frame) (*unwindSignal, bool) {
	sig, ok := r.(*unwindSignal)
	return sig, ok && sig.target == f
}

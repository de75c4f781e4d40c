// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mphnd

import "code.hybscloud.com/mphnd/substrate"

// withUnwindTranslation runs do and, if it panics with the substrate's
// bare unwind sentinel, re-panics with an unwindSignal naming target
// instead. A handler function invoked from YieldTo/MYieldTo runs on the
// driving goroutine, not the one yieldTo's own defer guards, so a resume
// call that triggers an unwind (ResumeUnwind, ResumeDrop, or a deeper
// yield's resumer choosing to unwind) needs this same translation
// applied again here, against the frame this particular token was
// captured from.
func withUnwindTranslation(target *frame, do func() any) any {
	defer func() {
		if r := recover(); r != nil {
			if r == substrate.ErrUnwind {
				raiseUnwind(target, identityUnwind, nil)
			}
			panic(r)
		}
	}()
	return do()
}

// Resume reinstates the continuation tok captured, supplying value as
// the result of the YieldTo/MYieldTo call that produced tok. Returns the
// eventual result of the prompt the continuation runs under.
func Resume[A, R any](tok *ResumeToken[A], value A) R {
	v := withUnwindTranslation(tok.target, func() any { return substrate.Resume(tok.raw, value) })
	r, _ := v.(R)
	return r
}

// ResumeTail is semantically identical to Resume. The substrate this
// package is built on distinguishes a stack-reusing fast path that Go's
// runtime gives no way to express at this layer, so the two collapse to
// one implementation.
func ResumeTail[A, R any](tok *ResumeToken[A], value A) R {
	v := withUnwindTranslation(tok.target, func() any { return substrate.ResumeTail(tok.raw, value) })
	r, _ := v.(R)
	return r
}

// ResumeUnwind reinstates the continuation only to immediately unwind it
// to the prompt it was captured under. Frames the unwind passes on the
// way only pop themselves; no FINALLY handler is run. It never returns
// normally: the unwind continues to propagate from the call site.
func ResumeUnwind[A any](tok *ResumeToken[A]) {
	withUnwindTranslation(tok.target, func() any { substrate.ResumeUnwind(tok.raw); return nil })
}

// ResumeDrop releases tok without resuming it. Per this substrate's
// contract (see substrate.ResumeShouldUnwind) a dropped continuation is
// always unwound rather than silently discarded, so ResumeDrop never
// returns normally either.
func ResumeDrop[A any](tok *ResumeToken[A]) {
	withUnwindTranslation(tok.target, func() any { substrate.ResumeDrop(tok.raw); return nil })
}

// ResumeShouldUnwind reports whether dropping tok would need to run an
// unwind. For this substrate it is unconditionally true; it is exposed
// so handler code can make that explicit rather than relying on the
// implicit behavior of ResumeDrop.
func ResumeShouldUnwind[A any](tok *ResumeToken[A]) bool {
	return substrate.ResumeShouldUnwind(tok.raw)
}

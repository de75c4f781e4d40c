// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package substrate

import "sync/atomic"

// Prompt is a delimiter on the call stack up to which a continuation can
// be captured. One Prompt exists per Run invocation (and per replay of a
// multi-shot continuation — see ResumeToken).
type Prompt struct {
	start func(p *Prompt) any

	yieldCh  chan yieldRequest
	resumeCh chan resumeValue
	resultCh chan bodyResult

	// replayLog records the resume values fed to earlier yields in this
	// run, in occurrence order. A fresh run created to service a second
	// (or later) shot of a multi-shot continuation pre-seeds this log so
	// that replaying the prefix of the computation up to the new yield
	// point requires no further suspension: Yield fast-forwards through
	// recorded entries instead of blocking on a channel.
	replayLog []resumeValue
	replayIdx int
}

type yieldRequest struct {
	fn func(*ResumeToken) any
}

type resumeValue struct {
	value  any
	unwind bool
}

type bodyResult struct {
	value any
	panic any
	isErr bool
}

// ResumeToken is the opaque handle passed to the yield-side function.
// Exactly one of Resume, ResumeTail, ResumeUnwind, or ResumeDrop must
// consume a one-shot token; MYield tokens relax that to "one
// consumption per shot" so the same token may be resumed more than
// once.
type ResumeToken struct {
	prompt    *Prompt
	multi     bool
	usedCount atomic.Uint32

	// priorLog is a snapshot of prompt.replayLog taken at the moment this
	// token's yield occurred — the prefix a later shot must replay before
	// it reaches this same point.
	priorLog []resumeValue
}

// newRun spawns the body goroutine for a fresh or replayed prompt and
// drives it to its first yield or completion.
func newRun(start func(p *Prompt) any, seedLog []resumeValue) any {
	p := &Prompt{
		start:     start,
		yieldCh:   make(chan yieldRequest),
		resumeCh:  make(chan resumeValue),
		resultCh:  make(chan bodyResult, 1),
		replayLog: seedLog,
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.resultCh <- bodyResult{panic: r, isErr: true}
				return
			}
		}()
		p.resultCh <- bodyResult{value: start(p)}
	}()
	return p.drive()
}

// drive pumps the prompt's event loop until the body either yields (in
// which case the yield's handler function runs synchronously, right
// here — "trampolining into the handler code running just outside the
// prompt" — and its return value becomes drive's return value) or
// completes (its return value, or a re-raised panic, becomes drive's
// return value).
func (p *Prompt) drive() any {
	select {
	case req := <-p.yieldCh:
		token := &ResumeToken{prompt: p, priorLog: append([]resumeValue(nil), p.replayLog[:p.replayIdx]...)}
		return req.fn(token)
	case res := <-p.resultCh:
		if res.isErr {
			panic(res.panic)
		}
		return res.value
	}
}

// Run installs a prompt and calls start(p) under it. Returns either
// start's return value or the value produced by the handler that
// ultimately resumed (or aborted) every yield raised during the run.
func Run(start func(p *Prompt) any) any {
	return newRun(start, nil)
}

// yield is shared by Yield and MYield; multi distinguishes one-shot from
// multi-shot tokens for the caller's resume-time enforcement.
func yield(p *Prompt, fn func(*ResumeToken) any, multi bool) any {
	if p.replayIdx < len(p.replayLog) {
		// Fast-forward: this yield occurrence was already resolved by an
		// earlier shot's resume value. No suspension, no goroutine hop.
		rv := p.replayLog[p.replayIdx]
		p.replayIdx++
		if rv.unwind {
			panic(unwindReplay{})
		}
		return rv.value
	}
	p.yieldCh <- yieldRequest{fn: func(token *ResumeToken) any {
		token.multi = multi
		return fn(token)
	}}
	// The goroutine that sent on yieldCh now blocks here until a resume
	// wrapper sends on resumeCh (see ResumeToken.consume).
	rv := <-p.resumeCh
	p.replayLog = append(p.replayLog, rv)
	p.replayIdx++
	if rv.unwind {
		panic(unwindReplay{})
	}
	return rv.value
}

// unwindReplay is a private sentinel Yield panics with when a replay log
// entry (or a live resume) carries the unwind flag. It is never observed
// outside this package: Yield/MYield recover it and re-panic with
// ErrUnwind instead.
type unwindReplay struct{}

// Yield captures the continuation from the call site up to p, then calls
// fn(token) outside the prompt. Returns the eventual resume value, or
// panics with ErrUnwind if the resumer requested an unwind — the caller
// (package mphnd's yield path) recovers this to raise its own unwind
// token.
func Yield(p *Prompt, fn func(*ResumeToken) any) (result any) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(unwindReplay); ok {
				panic(ErrUnwind)
			}
			panic(r)
		}
	}()
	return yield(p, fn, false)
}

// MYield is the multi-shot counterpart of Yield: the resume token it
// hands to fn may be resumed more than once.
func MYield(p *Prompt, fn func(*ResumeToken) any) (result any) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(unwindReplay); ok {
				panic(ErrUnwind)
			}
			panic(r)
		}
	}()
	return yield(p, fn, true)
}

// ErrUnwind is the panic value Yield/MYield raise when the resumer chose
// to unwind rather than continue. Package mphnd recovers it at the yield
// site and converts it into its own unwind token; it never escapes to
// user code.
var ErrUnwind = &unwindSentinel{}

type unwindSentinel struct{}

func (*unwindSentinel) Error() string { return "substrate: continuation unwound" }

// consume marks the token used for one shot and hands the resume value
// to the parked (or, for a later shot, freshly spawned) continuation,
// returning the eventual prompt result.
func (r *ResumeToken) consume(value any, unwind bool) any {
	n := r.usedCount.Add(1)
	if n == 1 {
		r.prompt.resumeCh <- resumeValue{value: value, unwind: unwind}
		return r.prompt.drive()
	}
	if !r.multi {
		panic("substrate: resume token consumed more than once")
	}
	newLog := append(append([]resumeValue(nil), r.priorLog...), resumeValue{value: value, unwind: unwind})
	return newRun(r.prompt.start, newLog)
}

// Resume reinstates the captured continuation with value, returning the
// eventual prompt result.
func Resume(r *ResumeToken, value any) any { return r.consume(value, false) }

// ResumeTail is semantically identical to Resume. The C substrate this
// package emulates distinguishes a stack-reusing fast path; Go exposes no
// equivalent stack-reuse mechanism at this layer, so the two collapse to
// the same implementation (the same simplification the mphnd package
// documents for its own ResumeTail wrapper).
func ResumeTail(r *ResumeToken, value any) any { return r.consume(value, false) }

// ResumeUnwind forces the continuation to unwind to its originating
// prompt rather than complete normally.
func ResumeUnwind(r *ResumeToken) { r.consume(nil, true) }

// ResumeDrop releases a token without normal resumption. ResumeShouldUnwind
// always reports true for this substrate: an un-resumed token leaves its
// parked goroutine blocked forever (Go's GC reclaims unreachable closures
// but not a goroutine parked on a channel), so dropping a token must
// always force an unwind to let the body's goroutine exit.
func ResumeDrop(r *ResumeToken) {
	if ResumeShouldUnwind(r) {
		ResumeUnwind(r)
		return
	}
	r.consume(nil, false)
}

// ResumeShouldUnwind reports whether dropping r must run an unwind.
func ResumeShouldUnwind(r *ResumeToken) bool { return true }

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package substrate implements the multi-prompt delimited continuation
// primitive that package mphnd is built on top of: Run (install a
// prompt), Yield/MYield (capture the continuation up to a specific
// prompt and transfer control to a handler function running outside
// it), and Resume/ResumeTail/ResumeDrop (reinstate a captured
// continuation).
//
// Go exposes no way to copy or replay a goroutine's native stack, so
// there is no literal analogue of libmprompt's stack-switching prompts.
// This package instead runs each prompt's body on a dedicated goroutine
// that blocks on a channel at every yield point; the goroutine driving
// Run (or a later Resume call) services that channel directly, so an
// arbitrary imperative body can yield at any call depth without having
// to be restructured into continuation-passing style, and a yield aimed
// at an outer prompt reaches it directly through that prompt's own
// channel pair without bubbling through any intervening ones.
//
// A parked goroutine can be resumed exactly once — after that its stack
// has moved on and cannot be rewound. Multi-shot resumption (MYield)
// works around this by recording every resume value a run has consumed
// so far; a second or later shot starts a fresh goroutine from the
// beginning of the same body and replays the recorded prefix without
// suspending, stopping only at the new resume value supplied for this
// shot. This asks more of multi-shot handlers than the original substrate
// does — the replayed prefix must be side-effect-free with respect to
// anything outside the captured computation — but it is the only way to
// offer repeatable suspension points without access to stack copying.
package substrate

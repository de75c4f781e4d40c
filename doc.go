// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mphnd implements a handler shadow stack and effect-dispatch
// engine: a general mechanism for installing dynamically scoped effect
// handlers, searching for the nearest one that answers a given effect,
// and transferring control to it — with or without capturing the
// calling code as a resumable continuation.
//
// A Kind is an effect's identity. A Context anchors one execution
// context's stack of installed handler frames. LinearHandler installs a
// handler that answers an effect immediately and cannot be the target of
// a captured continuation; PromptHandler installs one backed by a
// prompt, letting YieldTo or MYieldTo later suspend execution up to that
// installation and hand control to a resume token the handler decides
// when (and how many times) to resume. Under and Mask bias what Find
// returns without installing a handler of their own, letting a handler
// delegate its own effect to the next outer one, or a caller reach past
// several enclosing handlers at once.
//
// Package substrate supplies the underlying multi-prompt delimited
// continuation primitive this engine is built on; package effects
// implements a standard library of effects (state, reader, writer,
// error, and resource-safety brackets) on top of it.
package mphnd

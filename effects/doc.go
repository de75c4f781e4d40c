// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package effects implements a small standard library of effects —
// State, Reader, Writer, error handling via Either, and resource-safety
// combinators — directly on top of package mphnd's handler shadow stack.
// State, Reader, and Writer are answered by a LinearHandler frame
// holding a pointer to their cell, since none of them ever need to
// capture a continuation; error handling uses Go's own panic/recover,
// the same sealed-control-transfer idiom the engine itself uses for
// unwinding.
package effects

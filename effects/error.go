// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effects

import (
	"github.com/pkg/errors"

	"code.hybscloud.com/mphnd"
)

var errorKind = mphnd.NewKind("effects.error")

// Either holds the result of a computation that may fail: exactly one of
// IsRight (success, value in Right) or its complement (failure, value in
// Left) holds.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

func Left[E, A any](e E) Either[E, A]  { return Either[E, A]{left: e} }
func Right[E, A any](a A) Either[E, A] { return Either[E, A]{isRight: true, right: a} }

func (e Either[E, A]) IsRight() bool { return e.isRight }
func (e Either[E, A]) IsLeft() bool  { return !e.isRight }

// GetRight panics if e is Left; callers that haven't already checked
// IsRight should use MatchEither instead.
func (e Either[E, A]) GetRight() A {
	if !e.isRight {
		panic("effects: GetRight called on a Left")
	}
	return e.right
}

// GetLeft panics if e is Right; callers that haven't already checked
// IsLeft should use MatchEither instead.
func (e Either[E, A]) GetLeft() E {
	if e.isRight {
		panic("effects: GetLeft called on a Right")
	}
	return e.left
}

func MatchEither[E, A, B any](e Either[E, A], onLeft func(E) B, onRight func(A) B) B {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// errThrow is the panic payload Throw raises and Catch recovers. It is
// not a Go error and never escapes this package: it is a sealed
// control-transfer signal, in the same spirit as mphnd's own unwind
// panic, not a reportable failure. Nesting two Catch[E] handlers for the
// same E around a Throw[E] always delivers to the innermost one, the
// same as Go's own panic/recover; effects.errorKind exists only so
// Throw can give a clear diagnostic when no Catch is in scope at all.
type errThrow[E any] struct {
	value E
}

// Throw unwinds to the nearest enclosing Catch for E, carrying err. It
// never returns.
func Throw[E, A any](ctx *mphnd.Context, err E) A {
	if !mphnd.Find(ctx, errorKind).Valid() {
		panic(errors.Errorf("effects: Throw performed with no Catch handler in scope: %v", err))
	}
	panic(errThrow[E]{value: err})
}

// Catch runs body, returning Right of its result if it completes
// normally or Left of whatever error the nearest Throw[E] within it
// raised.
func Catch[E, A any](ctx *mphnd.Context, body func(*mphnd.Context) A) (result Either[E, A]) {
	var marker struct{}
	return mphnd.LinearHandler(ctx, errorKind, &marker, func(ctx *mphnd.Context, _ *struct{}, _ struct{}) (result Either[E, A]) {
		defer func() {
			if r := recover(); r != nil {
				thrown, ok := r.(errThrow[E])
				if !ok {
					panic(r)
				}
				result = Left[E, A](thrown.value)
			}
		}()
		return Right[E, A](body(ctx))
	}, struct{}{})
}

// RunError is Catch specialized for a computation whose only failure
// mode is an error value.
func RunError[A any](ctx *mphnd.Context, body func(*mphnd.Context) A) Either[error, A] {
	return Catch[error, A](ctx, body)
}

// ThrowError wraps err with a stack trace (if it doesn't already carry
// one) before throwing it, so Catch's caller can inspect where the
// failure originated.
func ThrowError[A any](ctx *mphnd.Context, err error) A {
	return Throw[error, A](ctx, errors.WithStack(err))
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mphnd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/mphnd"
)

var flip = mphnd.NewKind("test.flip")

// perform looks up the nearest flip handler and yields to it, returning
// whatever the handler eventually resumes with.
func perform(ctx *mphnd.Context, arg int) int {
	h := mphnd.Find(ctx, flip)
	if !h.Valid() {
		panic("test: flip performed with no handler in scope")
	}
	return mphnd.YieldTo(ctx, h, func(tok *mphnd.ResumeToken[int], hdata any, arg any) int {
		return mphnd.Resume[int, int](tok, arg.(int)*2)
	}, arg)
}

// mperform is perform's multi-shot counterpart, letting its caller
// resume the captured continuation as many times as it likes.
func mperform(ctx *mphnd.Context, arg int, onToken func(*mphnd.ResumeToken[int])) int {
	h := mphnd.Find(ctx, flip)
	return mphnd.MYieldTo(ctx, h, func(tok *mphnd.ResumeToken[int], hdata any, arg any) int {
		onToken(tok)
		return -1
	}, arg)
}

// S1: a linear handler answers an effect directly, no suspension.
func TestLinearHandlerAnswersDirectly(t *testing.T) {
	ctx := mphnd.NewContext()
	got := mphnd.LinearHandler(ctx, flip, new(int), func(ctx *mphnd.Context, hdata *int, arg int) int {
		return arg + 100
	}, 7)
	require.Equal(t, 107, got)
}

// S2: a prompt handler's yield captures the continuation and the
// handler resumes it once, synchronously.
func TestPromptHandlerYieldResume(t *testing.T) {
	ctx := mphnd.NewContext()
	got := mphnd.PromptHandler(ctx, flip, new(int), func(ctx *mphnd.Context, hdata *int, arg int) int {
		return perform(ctx, arg) + 1
	}, 3)
	require.Equal(t, 7, got) // perform(3) -> resume(3*2=6) -> +1 = 7
}

// S3/S4: Mask/Under let a nested installation of the same kind be
// skipped so an effect reaches the correct outer handler.
func TestMaskSkipsInnerHandler(t *testing.T) {
	ctx := mphnd.NewContext()
	got := mphnd.PromptHandler(ctx, flip, new(int), func(outerCtx *mphnd.Context, _ *int, outerArg int) int {
		return mphnd.LinearHandler(outerCtx, flip, new(int), func(innerCtx *mphnd.Context, _ *int, innerArg int) int {
			return mphnd.Mask(innerCtx, flip, 0, func(maskedCtx *mphnd.Context) int {
				return perform(maskedCtx, innerArg)
			})
		}, outerArg)
	}, 5)
	require.Equal(t, 10, got) // masked past the inner linear handler, answered by the outer prompt handler
}

// Two masks for the same kind nest correctly when each names how many
// masking levels are already open when the search reaches it: the inner
// mask (from=0) is reached first and opens one level, the outer mask
// (from=1) is reached with that level open and opens a second, so
// together they hide both enclosing handlers of that kind. The inner
// mask alone would hide only one; the outer mask alone hides none,
// since its from gate is never met.
func TestNestedMasksComposeByFromOrdinal(t *testing.T) {
	ctx := mphnd.NewContext()
	var found mphnd.Handle
	mphnd.LinearHandler(ctx, flip, new(int), func(outerCtx *mphnd.Context, _ *int, _ int) int {
		return mphnd.LinearHandler(outerCtx, flip, new(int), func(innerCtx *mphnd.Context, _ *int, _ int) int {
			return mphnd.Mask(innerCtx, flip, 1, func(outerMaskCtx *mphnd.Context) int {
				return mphnd.Mask(outerMaskCtx, flip, 0, func(innerMaskCtx *mphnd.Context) int {
					found = mphnd.Find(innerMaskCtx, flip)
					return 0
				})
			})
		}, 0)
	}, 0)
	require.False(t, found.Valid(), "both nested handlers of the masked kind should be hidden")
}

func TestUnderDelegatesToOuterHandler(t *testing.T) {
	ctx := mphnd.NewContext()
	got := mphnd.PromptHandler(ctx, flip, new(int), func(outerCtx *mphnd.Context, _ *int, outerArg int) int {
		return mphnd.LinearHandler(outerCtx, flip, new(int), func(innerCtx *mphnd.Context, _ *int, innerArg int) int {
			return mphnd.Under(innerCtx, flip, func(underCtx *mphnd.Context) int {
				return perform(underCtx, innerArg)
			})
		}, outerArg)
	}, 5)
	require.Equal(t, 10, got)
}

// S5: an unwind through a prompt handler yields its zero value rather
// than propagating as an error.
func TestResumeUnwindYieldsZeroValue(t *testing.T) {
	ctx := mphnd.NewContext()
	got := mphnd.PromptHandler(ctx, flip, new(int), func(ctx *mphnd.Context, hdata *int, arg int) int {
		h := mphnd.Find(ctx, flip)
		return mphnd.YieldTo(ctx, h, func(tok *mphnd.ResumeToken[int], _ any, _ any) int {
			mphnd.ResumeUnwind(tok)
			return 0
		}, arg)
	}, 9)
	require.Equal(t, 0, got)
}

// S6: a multi-shot token may be resumed more than once, each shot
// producing an independent result.
func TestMultiShotResumeProducesIndependentResults(t *testing.T) {
	ctx := mphnd.NewContext()
	var shots []int
	mphnd.PromptHandler(ctx, flip, new(int), func(ctx *mphnd.Context, _ *int, arg int) int {
		return mperform(ctx, arg, func(tok *mphnd.ResumeToken[int]) {
			shots = append(shots, mphnd.Resume[int, int](tok, 1))
			shots = append(shots, mphnd.Resume[int, int](tok, 2))
		})
	}, 0)
	// mperform's handler never transforms the resumed value, so each
	// shot's result is just the value it was resumed with.
	require.Equal(t, []int{1, 2}, shots)
}

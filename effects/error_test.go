// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effects_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/mphnd"
	"code.hybscloud.com/mphnd/effects"
)

func TestCatchCatchesThrow(t *testing.T) {
	ctx := mphnd.NewContext()
	result := effects.RunError(ctx, func(ctx *mphnd.Context) int {
		return effects.ThrowError[int](ctx, errors.New("boom"))
	})
	require.True(t, result.IsLeft())
	require.EqualError(t, result.GetLeft(), "boom")
}

func TestCatchPassesThroughSuccess(t *testing.T) {
	ctx := mphnd.NewContext()
	result := effects.RunError(ctx, func(ctx *mphnd.Context) int {
		return 9
	})
	require.True(t, result.IsRight())
	require.Equal(t, 9, result.GetRight())
}

func TestThrowWithoutCatchPanics(t *testing.T) {
	ctx := mphnd.NewContext()
	require.Panics(t, func() {
		effects.ThrowError[int](ctx, errors.New("unhandled"))
	})
}

func TestBracketAlwaysReleases(t *testing.T) {
	ctx := mphnd.NewContext()
	released := false
	require.Panics(t, func() {
		effects.Bracket(ctx,
			func(*mphnd.Context) int { return 1 },
			func(ctx *mphnd.Context, r int) int { panic("use failed") },
			func(ctx *mphnd.Context, r int, failed bool) { released = failed },
		)
	})
	require.True(t, released)
}

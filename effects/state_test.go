// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effects_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/mphnd"
	"code.hybscloud.com/mphnd/effects"
)

func TestRunStateGetPut(t *testing.T) {
	ctx := mphnd.NewContext()
	result, final := effects.RunState(ctx, 10, func(ctx *mphnd.Context) int {
		effects.Modify(ctx, func(n int) int { return n + 1 })
		v := effects.Get[int](ctx)
		effects.Put(ctx, v*2)
		return v
	})
	require.Equal(t, 11, result)
	require.Equal(t, 22, final)
}

func TestRunReaderAsk(t *testing.T) {
	ctx := mphnd.NewContext()
	got := effects.RunReader(ctx, "config-value", func(ctx *mphnd.Context) string {
		return effects.Ask[string](ctx) + "!"
	})
	require.Equal(t, "config-value!", got)
}

func TestWriterTellAndListen(t *testing.T) {
	ctx := mphnd.NewContext()
	pair := effects.Listen[string](ctx, func(ctx *mphnd.Context) int {
		effects.Tell(ctx, "a")
		effects.Tell(ctx, "b")
		return 7
	})
	require.Equal(t, 7, pair.Value)
	require.Equal(t, []string{"a", "b"}, pair.Output)
}

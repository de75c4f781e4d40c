// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mphnd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var unwindTestKind = NewKind("test.unwind")

// TestUnwindCustomFnObservesLiveHdata exercises the general
// unwindSignal{target, fn, arg} transport directly (package-internal,
// since no exported caller supplies a custom fn yet): a FINALLY-style
// unwind fn must see hdata still live when it runs at the catch site,
// per S5's note that hdata remained observable as 9 to such a fn if
// supplied.
func TestUnwindCustomFnObservesLiveHdata(t *testing.T) {
	ctx := NewContext()
	var observed int
	got := PromptHandler(ctx, unwindTestKind, new(int), func(ctx *Context, hdata *int, arg int) int {
		*hdata = 9
		h := Find(ctx, unwindTestKind)
		return YieldTo(ctx, h, func(tok *ResumeToken[int], _ any, _ any) int {
			raiseUnwind(tok.target, func(hdata, arg any) any {
				observed = *(hdata.(*int))
				return arg.(int) + 1
			}, 41)
			return 0
		}, arg)
	}, 0)
	require.Equal(t, 9, observed)
	require.Equal(t, 42, got)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package substrate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/mphnd/substrate"
)

func TestRunWithoutYield(t *testing.T) {
	got := substrate.Run(func(p *substrate.Prompt) any { return 42 })
	require.Equal(t, 42, got)
}

func TestYieldAndResume(t *testing.T) {
	got := substrate.Run(func(p *substrate.Prompt) any {
		v := substrate.Yield(p, func(token *substrate.ResumeToken) any {
			return substrate.Resume(token, 7)
		})
		return v.(int) + 1
	})
	require.Equal(t, 8, got)
}

func TestResumeTokenRejectsDoubleUse(t *testing.T) {
	require.Panics(t, func() {
		substrate.Run(func(p *substrate.Prompt) any {
			return substrate.Yield(p, func(token *substrate.ResumeToken) any {
				substrate.Resume(token, 1)
				return substrate.Resume(token, 2)
			})
		})
	})
}

func TestMYieldResumesMoreThanOnce(t *testing.T) {
	var shots []any
	substrate.Run(func(p *substrate.Prompt) any {
		v := substrate.MYield(p, func(token *substrate.ResumeToken) any {
			shots = append(shots, substrate.Resume(token, true))
			shots = append(shots, substrate.Resume(token, false))
			return nil
		})
		if v.(bool) {
			return "yes"
		}
		return "no"
	})
	require.Equal(t, []any{"yes", "no"}, shots)
}

func TestResumeUnwindPropagatesErrUnwind(t *testing.T) {
	require.PanicsWithValue(t, substrate.ErrUnwind, func() {
		substrate.Run(func(p *substrate.Prompt) any {
			return substrate.Yield(p, func(token *substrate.ResumeToken) any {
				substrate.ResumeUnwind(token)
				return nil
			})
		})
	})
}

func TestResumeDropForcesUnwind(t *testing.T) {
	require.PanicsWithValue(t, substrate.ErrUnwind, func() {
		substrate.Run(func(p *substrate.Prompt) any {
			return substrate.Yield(p, func(token *substrate.ResumeToken) any {
				substrate.ResumeDrop(token)
				return nil
			})
		})
	})
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/mphnd"
	"code.hybscloud.com/mphnd/effects"
)

// runConcurrent fans n independent fibers out across an errgroup, each
// with its own *mphnd.Context — a shadow stack is tied to the execution
// it belongs to and is never meant to be shared across goroutines, so
// "concurrency" here means many contexts running side by side, not one
// context touched from many places.
func runConcurrent(ctx context.Context, n int) ([]string, error) {
	g, _ := errgroup.WithContext(ctx)
	results := make([]string, n)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			mctx := mphnd.NewContext()
			total, final := effects.RunState(mctx, i, func(mctx *mphnd.Context) int {
				effects.Modify(mctx, func(n int) int { return n * n })
				return effects.Get[int](mctx)
			})
			results[i] = fmt.Sprintf("fiber %d: state settled at %d (returned %d)", i, final, total)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

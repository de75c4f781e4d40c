// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"code.hybscloud.com/mphnd"
	"code.hybscloud.com/mphnd/effects"
)

var ask = mphnd.NewKind("demo.ask")

// query performs the ask effect: it finds the nearest handler for ask
// and yields to it, returning whatever value the handler resumes with.
func query(ctx *mphnd.Context, ticket int) int {
	h := mphnd.Find(ctx, ask)
	if !h.Valid() {
		panic("demo: ask performed with no handler installed")
	}
	return mphnd.YieldTo(ctx, h, func(tok *mphnd.ResumeToken[int], hdata any, arg any) int {
		return mphnd.Resume[int, int](tok, arg.(int)+1)
	}, ticket)
}

// scenario is one of the six literal walkthroughs this engine's test
// suite exercises; the scenario subcommand runs each by name from the
// command line.
type scenario struct {
	name string
	run  func() string
}

var scenarios = []scenario{
	{"s1-linear-ask", func() string {
		ctx := mphnd.NewContext()
		v := effects.RunReader(ctx, 41, func(ctx *mphnd.Context) int {
			return effects.Ask[int](ctx) + 1
		})
		return fmt.Sprintf("linear ask answered inline: %d", v)
	}},
	{"s2-yield-resume", func() string {
		ctx := mphnd.NewContext()
		v := mphnd.PromptHandler(ctx, ask, new(int), func(ctx *mphnd.Context, _ *int, arg int) int {
			return query(ctx, arg)
		}, 10)
		return fmt.Sprintf("yield captured and resumed once: %d", v)
	}},
	{"s3-mask", func() string {
		ctx := mphnd.NewContext()
		v := mphnd.PromptHandler(ctx, ask, new(int), func(outer *mphnd.Context, _ *int, outerArg int) int {
			return mphnd.LinearHandler(outer, ask, new(int), func(inner *mphnd.Context, _ *int, innerArg int) int {
				return mphnd.Mask(inner, ask, 0, func(masked *mphnd.Context) int {
					return query(masked, innerArg)
				})
			}, outerArg)
		}, 10)
		return fmt.Sprintf("mask reached past the inner handler to the outer one: %d", v)
	}},
	{"s4-under", func() string {
		ctx := mphnd.NewContext()
		v := mphnd.PromptHandler(ctx, ask, new(int), func(outer *mphnd.Context, _ *int, outerArg int) int {
			return mphnd.LinearHandler(outer, ask, new(int), func(inner *mphnd.Context, _ *int, innerArg int) int {
				return mphnd.Under(inner, ask, func(under *mphnd.Context) int {
					return query(under, innerArg)
				})
			}, outerArg)
		}, 10)
		return fmt.Sprintf("under delegated one level out to the outer handler: %d", v)
	}},
	{"s5-unwind", func() string {
		ctx := mphnd.NewContext()
		v := mphnd.PromptHandler(ctx, ask, new(int), func(ctx *mphnd.Context, _ *int, arg int) int {
			h := mphnd.Find(ctx, ask)
			return mphnd.YieldTo(ctx, h, func(tok *mphnd.ResumeToken[int], _ any, _ any) int {
				mphnd.ResumeUnwind(tok)
				return 0
			}, arg)
		}, 10)
		return fmt.Sprintf("unwound continuation surfaced the zero value: %d", v)
	}},
	{"s6-multi-shot", func() string {
		ctx := mphnd.NewContext()
		var shots []int
		mphnd.PromptHandler(ctx, ask, new(int), func(ctx *mphnd.Context, _ *int, arg int) int {
			h := mphnd.Find(ctx, ask)
			return mphnd.MYieldTo(ctx, h, func(tok *mphnd.ResumeToken[int], _ any, arg any) int {
				shots = append(shots, mphnd.Resume[int, int](tok, arg.(int)+1))
				shots = append(shots, mphnd.Resume[int, int](tok, arg.(int)+2))
				return -1
			}, arg)
		}, 10)
		return fmt.Sprintf("one continuation resumed twice, independently: %v", shots)
	}},
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}

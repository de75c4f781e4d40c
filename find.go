// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mphnd

// Find walks the shadow stack outward from the innermost frame looking
// for the nearest unshadowed handler installed for kind. It is the
// engine's only search primitive: Perform-style effect operations call
// it to locate the frame a yield should target, and Under/Mask exist
// purely to bias what it returns.
//
// An under frame fires regardless of which kind is being searched for:
// on reaching one, the walk fast-forwards past every intervening frame
// — whatever kind they carry — until it reaches the frame matching the
// under's own target kind, then steps past that frame too. This is the
// tail-resumption idiom: a handler that re-performs its own effect
// installs an under frame naming itself so the re-performed effect
// skips straight past it (and anything nested inside it) to the next
// outer handler, rather than being caught by itself again.
//
// A mask frame shadows matches of one specific kind using a running
// counter (mask_level): reaching a mask frame for kind increments the
// counter only if the mask's from ordinal is already satisfied by the
// counter's current value, and reaching an ordinary matching frame while
// the counter is positive decrements it and keeps walking outward
// instead of matching. The from-ordinal gate is what lets nested masks
// for the same kind compose correctly without double-masking.
func Find(ctx *Context, kind *Kind) Handle {
	h := ctx.top
	maskLevel := 0
	for h != nil {
		switch {
		case h.kind == kind:
			if maskLevel <= 0 {
				return Handle{h}
			}
			maskLevel--
		case h.kind == underKind:
			u := h.underTo
			for {
				h = h.parent
				if h == nil || h.kind == u {
					break
				}
			}
			if h == nil {
				return Handle{nil}
			}
		case h.kind == maskKind:
			if h.maskOf == kind && h.maskFrom <= maskLevel {
				maskLevel++
			}
		}
		h = h.parent
	}
	return Handle{nil}
}

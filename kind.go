// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mphnd

// Kind identifies an effect. Kinds are compared by pointer identity, not
// by name — two calls to NewKind with the same label never collide — so
// a label collision between unrelated packages can never cause one
// handler to catch another's effect by accident.
type Kind struct {
	label string
}

// NewKind allocates a fresh, globally unique effect identity. label is
// carried only for diagnostics (panic messages, %v formatting) and plays
// no part in equality.
func NewKind(label string) *Kind {
	return &Kind{label: label}
}

func (k *Kind) String() string {
	if k == nil {
		return "<nil kind>"
	}
	return k.label
}

// Reserved kinds used by the engine itself. FINALLY is reserved for a
// frame whose handler would run on every unwind that passes it; nothing
// in this package installs such a frame or runs one during an unwind.
// Under and Mask are the scope-control
// frame kinds installed by Under and Mask; user code never searches for
// them directly either, but Find treats them specially — see find.go.
var (
	FINALLY   = NewKind("mphnd.finally")
	underKind = NewKind("mphnd.under")
	maskKind  = NewKind("mphnd.mask")
)

package ident

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// The value type of the interaction net runtime. Definition handles, numeric
// literals and reference tags all live in this space once a program is lowered.
type Val = uint32

// A Name identifies a variable, definition or constructor. Names are ordered
// lexicographically, so sorting a slice of names is deterministic.
type Name string

// The absent name. Used by binders that bind nothing (erased lambdas, wildcard
// slots in let and dup patterns) and always rendered as `*`.
const None Name = ""

// Whether the name actually binds something.
func (n Name) Bound() bool {
	return n != None
}

func (n Name) String() string {
	if n == None {
		return "*"
	}
	return string(n)
}

// A dense handle into a definition registry. Handles start at zero and are
// allocated by the registry that owns them, never by hand.
type DefId Val

// Convert the handle into the numbering used by the runtime, which cannot
// represent a reference to the value zero.
func (id DefId) ToInternal() Val {
	return Val(id) + 1
}

// Convert a runtime reference number back into a registry handle. This is the
// inverse of ToInternal; zero is the runtime's 'no reference' and never decodes.
func FromInternal(val Val) DefId {
	if val == 0 {
		panic("ident: runtime reference 0 does not name a definition")
	}
	return DefId(val - 1)
}

func (id DefId) String() string {
	return fmt.Sprintf("#%d", Val(id))
}

// Derive a display name from a numeric index, writing the index in base 26
// over the letters a-z. Index 0 is `a`, 25 is `z`, 26 is `ba`.
func VarIdToName[T constraints.Unsigned](id T) Name {
	digits := []byte{}
	for {
		digits = append(digits, byte(id%26)+'a')
		id /= 26
		if id == 0 {
			break
		}
	}
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}
	return Name(digits)
}

package term

import (
	"fmt"

	"github.com/glossopoeia/interlang/compiler/defs"
	"github.com/glossopoeia/interlang/compiler/ident"
)

// Render the term in its canonical textual form. The output is deterministic
// and meant for debugging and snapshots; no parser is required to accept it.
// Panics if the term references a definition the registry does not know.
func Show(t Term, names *defs.DefNames) string {
	return t.show(names)
}

func (t Lam) show(names *defs.DefNames) string {
	return fmt.Sprintf("λ%s %s", t.Nam, t.Bod.show(names))
}

func (t Var) show(names *defs.DefNames) string {
	return t.Nam.String()
}

func (t Chn) show(names *defs.DefNames) string {
	return fmt.Sprintf("λ$%s %s", t.Nam, t.Bod.show(names))
}

func (t Lnk) show(names *defs.DefNames) string {
	return fmt.Sprintf("$%s", t.Nam)
}

func (t Let) show(names *defs.DefNames) string {
	return fmt.Sprintf("let %s = %s; %s", t.Pat, t.Val.show(names), t.Nxt.show(names))
}

func (t App) show(names *defs.DefNames) string {
	return fmt.Sprintf("(%s %s)", t.Fun.show(names), t.Arg.show(names))
}

func (t Tup) show(names *defs.DefNames) string {
	return fmt.Sprintf("(%s, %s)", t.Fst.show(names), t.Snd.show(names))
}

func (t Dup) show(names *defs.DefNames) string {
	return fmt.Sprintf("dup %s %s = %s; %s", t.Fst, t.Snd, t.Val.show(names), t.Nxt.show(names))
}

func (t Sup) show(names *defs.DefNames) string {
	return fmt.Sprintf("{%s %s}", t.Fst.show(names), t.Snd.show(names))
}

func (t Num) show(names *defs.DefNames) string {
	return fmt.Sprint(t.Val)
}

func (t Opx) show(names *defs.DefNames) string {
	return fmt.Sprintf("(%s %s %s)", t.Op, t.Fst.show(names), t.Snd.show(names))
}

func (t Match) show(names *defs.DefNames) string {
	// Only a lambda successor is a valid match, but terms in the middle of a
	// transformation can still have any shape and have to be displayed.
	pred, succ := ident.None, t.Succ
	if lam, ok := t.Succ.(Lam); ok {
		pred, succ = lam.Nam, lam.Bod
	}
	return fmt.Sprintf("match %s { 0: %s; 1+%s: %s }", t.Cond.show(names), t.Zero.show(names), pred, succ.show(names))
}

func (t Ref) show(names *defs.DefNames) string {
	nam, ok := names.Name(t.DefId)
	if !ok {
		panic(fmt.Sprintf("term: reference to unregistered definition %s", t.DefId))
	}
	return nam.String()
}

func (t Era) show(names *defs.DefNames) string {
	return "*"
}

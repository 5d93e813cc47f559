package substitution

import (
	"github.com/glossopoeia/interlang/compiler/ident"
	"github.com/glossopoeia/interlang/compiler/term"
)

// Replace every occurrence of the variable from in t with a copy of to.
//
// Binders of from shadow it: a lambda, let or dup that binds from stops the
// substitution from reaching its body. Scopeless lambdas never shadow, and
// links are never substituted, since both are resolved by name only when the
// program is lowered to a net. Bound variables are not renamed, so the caller
// must ensure that no free variable of to is captured by a binder between from
// and the place it is used.
func Subst(t term.Term, from ident.Name, to term.Term) term.Term {
	switch t := t.(type) {
	case term.Lam:
		if t.Nam.Bound() && t.Nam == from {
			return t
		}
		return term.Lam{Nam: t.Nam, Bod: Subst(t.Bod, from, to)}
	case term.Var:
		if t.Nam == from {
			return term.Clone(to)
		}
		return t
	case term.Chn:
		return term.Chn{Nam: t.Nam, Bod: Subst(t.Bod, from, to)}
	case term.Lnk:
		return t
	case term.Let:
		nxt := t.Nxt
		if !t.Pat.Binds(from) {
			nxt = Subst(nxt, from, to)
		}
		return term.Let{Pat: t.Pat, Val: Subst(t.Val, from, to), Nxt: nxt}
	case term.App:
		return term.App{Fun: Subst(t.Fun, from, to), Arg: Subst(t.Arg, from, to)}
	case term.Tup:
		return term.Tup{Fst: Subst(t.Fst, from, to), Snd: Subst(t.Snd, from, to)}
	case term.Dup:
		nxt := t.Nxt
		if !t.Binds(from) {
			nxt = Subst(nxt, from, to)
		}
		return term.Dup{Fst: t.Fst, Snd: t.Snd, Val: Subst(t.Val, from, to), Nxt: nxt}
	case term.Sup:
		return term.Sup{Fst: Subst(t.Fst, from, to), Snd: Subst(t.Snd, from, to)}
	case term.Num:
		return t
	case term.Opx:
		return term.Opx{Op: t.Op, Fst: Subst(t.Fst, from, to), Snd: Subst(t.Snd, from, to)}
	case term.Match:
		// the predecessor is bound by the lambda in Succ, which shadows on its own
		return term.Match{
			Cond: Subst(t.Cond, from, to),
			Zero: Subst(t.Zero, from, to),
			Succ: Subst(t.Succ, from, to),
		}
	case term.Ref:
		return t
	case term.Era:
		return t
	default:
		panic("substitution: unknown term variant")
	}
}

// A single replacement of a variable by a term.
type Binding struct {
	From ident.Name
	To   term.Term
}

// A sequence of single-variable substitutions, applied in order. Later
// bindings see the results of earlier ones.
type Substitution []Binding

func (s Substitution) Apply(t term.Term) term.Term {
	for _, b := range s {
		t = Subst(t, b.From, b.To)
	}
	return t
}

// A substitution equivalent to applying r first and then l.
func (l Substitution) Compose(r Substitution) Substitution {
	res := make(Substitution, 0, len(l)+len(r))
	res = append(res, r...)
	return append(res, l...)
}

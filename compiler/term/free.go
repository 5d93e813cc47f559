package term

import (
	"github.com/glossopoeia/interlang/compiler/ident"
	set "github.com/hashicorp/go-set/v3"
	"golang.org/x/exp/slices"
)

// The number of occurrences of each distinct free variable in the term. Only
// ordinary scoped variables count: a scopeless lambda binds nothing here and
// its uses are not variable occurrences.
func Free(t Term) map[ident.Name]int {
	occ := make(map[ident.Name]int)
	t.freeAcc(set.New[ident.Name](0), occ)
	return occ
}

// Count the free variables of body with the given names in scope. Names that
// were already bound further out stay bound after body is done.
func bindAcc(bound *set.Set[ident.Name], names []ident.Name, body Term, acc map[ident.Name]int) {
	added := []ident.Name{}
	for _, n := range names {
		if n.Bound() && bound.Insert(n) {
			added = append(added, n)
		}
	}
	body.freeAcc(bound, acc)
	for _, n := range added {
		bound.Remove(n)
	}
}

func (t Lam) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {
	bindAcc(bound, []ident.Name{t.Nam}, t.Bod, acc)
}

func (t Var) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {
	if !bound.Contains(t.Nam) {
		acc[t.Nam] += 1
	}
}

func (t Chn) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {
	t.Bod.freeAcc(bound, acc)
}

func (t Lnk) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {}

func (t Let) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {
	t.Val.freeAcc(bound, acc)
	bindAcc(bound, t.Pat.Names(), t.Nxt, acc)
}

func (t App) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {
	t.Fun.freeAcc(bound, acc)
	t.Arg.freeAcc(bound, acc)
}

func (t Tup) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {
	t.Fst.freeAcc(bound, acc)
	t.Snd.freeAcc(bound, acc)
}

func (t Dup) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {
	t.Val.freeAcc(bound, acc)
	bindAcc(bound, []ident.Name{t.Fst, t.Snd}, t.Nxt, acc)
}

func (t Sup) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {
	t.Fst.freeAcc(bound, acc)
	t.Snd.freeAcc(bound, acc)
}

func (t Num) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {}

func (t Opx) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {
	t.Fst.freeAcc(bound, acc)
	t.Snd.freeAcc(bound, acc)
}

func (t Match) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {
	t.Cond.freeAcc(bound, acc)
	t.Zero.freeAcc(bound, acc)
	t.Succ.freeAcc(bound, acc)
}

func (t Ref) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {}

func (t Era) freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int) {}

// Every definition the term references, in ascending order and without repeats.
func Refs(t Term) []ident.DefId {
	acc := set.New[ident.DefId](0)
	refsAcc(t, acc)
	res := acc.Slice()
	slices.Sort(res)
	return res
}

func refsAcc(t Term, acc *set.Set[ident.DefId]) {
	switch t := t.(type) {
	case Ref:
		acc.Insert(t.DefId)
	case Lam:
		refsAcc(t.Bod, acc)
	case Chn:
		refsAcc(t.Bod, acc)
	case Let:
		refsAcc(t.Val, acc)
		refsAcc(t.Nxt, acc)
	case App:
		refsAcc(t.Fun, acc)
		refsAcc(t.Arg, acc)
	case Tup:
		refsAcc(t.Fst, acc)
		refsAcc(t.Snd, acc)
	case Dup:
		refsAcc(t.Val, acc)
		refsAcc(t.Nxt, acc)
	case Sup:
		refsAcc(t.Fst, acc)
		refsAcc(t.Snd, acc)
	case Opx:
		refsAcc(t.Fst, acc)
		refsAcc(t.Snd, acc)
	case Match:
		refsAcc(t.Cond, acc)
		refsAcc(t.Zero, acc)
		refsAcc(t.Succ, acc)
	}
}

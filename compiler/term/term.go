package term

import (
	"github.com/glossopoeia/interlang/compiler/defs"
	"github.com/glossopoeia/interlang/compiler/ident"
	"github.com/glossopoeia/interlang/compiler/op"
	set "github.com/hashicorp/go-set/v3"
)

// The executable expression grammar of the compiler. A term is a tree: every
// child belongs to exactly one parent, and sharing of values is expressed with
// the explicit Dup and Sup variants rather than by aliasing subterms. The set of
// variants is closed; the methods are unexported so no other package can add one.
type Term interface {
	// Render the term, resolving definition references through the registry.
	show(names *defs.DefNames) string
	// Helper method to construct the free set of variables efficiently
	// for each term variant.
	freeAcc(bound *set.Set[ident.Name], acc map[ident.Name]int)
}

// A lambda binding Nam in Bod. An absent name erases the argument.
type Lam struct {
	Nam ident.Name
	Bod Term
}

type Var struct {
	Nam ident.Name
}

// A scopeless lambda. The variable it binds may be used anywhere in the
// program through Lnk, not only inside Bod, so it models a wire of the net
// that does not follow the shape of the tree. It binds no ordinary variable.
type Chn struct {
	Nam ident.Name
	Bod Term
}

// A use of a scopeless lambda's variable. Resolved by name when the program
// is lowered to a net.
type Lnk struct {
	Nam ident.Name
}

type Let struct {
	Pat LetPat
	Val Term
	Nxt Term
}

type App struct {
	Fun Term
	Arg Term
}

type Tup struct {
	Fst Term
	Snd Term
}

// Explicit duplication of Val into Fst and Snd, scoped over Nxt. Either name
// may be absent, in which case that copy is erased.
type Dup struct {
	Fst ident.Name
	Snd ident.Name
	Val Term
	Nxt Term
}

// A superposition of two values at the same position of the net. Dual to Dup.
type Sup struct {
	Fst Term
	Snd Term
}

type Num struct {
	Val ident.Val
}

// A numeric operation between built-in numbers.
type Opx struct {
	Op  op.Op
	Fst Term
	Snd Term
}

// Branch on whether Cond is zero. Succ is expected to be a Lam binding the
// predecessor of Cond; NewMatch builds that shape.
type Match struct {
	Cond Term
	Zero Term
	Succ Term
}

type Ref struct {
	DefId ident.DefId
}

type Era struct{}

// The pattern bound by a let: one name, or the two halves of a tuple.
type LetPat interface {
	// Whether the pattern binds the given name.
	Binds(ident.Name) bool
	// The names the pattern binds, absent slots included.
	Names() []ident.Name
	String() string
}

type PVar struct {
	Nam ident.Name
}

type PTup struct {
	Fst ident.Name
	Snd ident.Name
}

func (p PVar) Binds(n ident.Name) bool {
	return p.Nam.Bound() && p.Nam == n
}

func (p PVar) Names() []ident.Name {
	return []ident.Name{p.Nam}
}

func (p PVar) String() string {
	return p.Nam.String()
}

func (p PTup) Binds(n ident.Name) bool {
	return dupBinds(p.Fst, p.Snd, n)
}

func (p PTup) Names() []ident.Name {
	return []ident.Name{p.Fst, p.Snd}
}

func (p PTup) String() string {
	return "(" + p.Fst.String() + ", " + p.Snd.String() + ")"
}

// Whether the dup binds the given name in its continuation.
func (t Dup) Binds(n ident.Name) bool {
	return dupBinds(t.Fst, t.Snd, n)
}

// An absent slot binds nothing, so it never shadows.
func dupBinds(fst, snd, n ident.Name) bool {
	return (fst.Bound() && fst == n) || (snd.Bound() && snd == n)
}

// Make a call term by folding args around a called function term with applications.
func Call(fun Term, args ...Term) Term {
	for _, a := range args {
		fun = App{fun, a}
	}
	return fun
}

// Build a match in canonical form, with the successor branch wrapped in a
// lambda binding pred.
func NewMatch(cond Term, zero Term, pred ident.Name, succ Term) Term {
	return Match{cond, zero, Lam{pred, succ}}
}

// A deep copy of the term.
func Clone(t Term) Term {
	switch t := t.(type) {
	case Lam:
		return Lam{t.Nam, Clone(t.Bod)}
	case Var:
		return t
	case Chn:
		return Chn{t.Nam, Clone(t.Bod)}
	case Lnk:
		return t
	case Let:
		return Let{t.Pat, Clone(t.Val), Clone(t.Nxt)}
	case App:
		return App{Clone(t.Fun), Clone(t.Arg)}
	case Tup:
		return Tup{Clone(t.Fst), Clone(t.Snd)}
	case Dup:
		return Dup{t.Fst, t.Snd, Clone(t.Val), Clone(t.Nxt)}
	case Sup:
		return Sup{Clone(t.Fst), Clone(t.Snd)}
	case Num:
		return t
	case Opx:
		return Opx{t.Op, Clone(t.Fst), Clone(t.Snd)}
	case Match:
		return Match{Clone(t.Cond), Clone(t.Zero), Clone(t.Succ)}
	case Ref:
		return t
	case Era:
		return t
	default:
		panic("term: unknown term variant")
	}
}

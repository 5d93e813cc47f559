package book

import (
	"fmt"
	"strings"

	"github.com/glossopoeia/interlang/compiler/adt"
	"github.com/glossopoeia/interlang/compiler/ident"
	"github.com/glossopoeia/interlang/compiler/term"
	"github.com/glossopoeia/interlang/compiler/util"
	"github.com/rjNemo/underscore"
)

// A parameter pattern of a rule: a variable binding the whole argument, or a
// constructor with nested patterns for its fields. Numbers are not matched
// here; a rule that splits on a number builds a term.Match in its body.
type Pattern interface {
	fmt.Stringer
	// Helper method to collect the constructors used in the pattern.
	ctrsAcc(acc []adt.Ctr) []adt.Ctr
}

type PVar struct {
	Nam ident.Name
}

type PCtr struct {
	Nam  ident.Name
	Args []Pattern
}

func (p PVar) String() string {
	return p.Nam.String()
}

func (p PCtr) String() string {
	args := underscore.Map(p.Args, func(a Pattern) string { return " " + a.String() })
	return fmt.Sprintf("(%s%s)", p.Nam, strings.Join(args, ""))
}

func (p PVar) ctrsAcc(acc []adt.Ctr) []adt.Ctr {
	return acc
}

func (p PCtr) ctrsAcc(acc []adt.Ctr) []adt.Ctr {
	acc = append(acc, adt.Ctr{Name: p.Nam, Arity: len(p.Args)})
	for _, a := range p.Args {
		acc = a.ctrsAcc(acc)
	}
	return acc
}

// Every constructor the pattern uses, paired with the number of fields it was
// given, in order of first use.
func PatternCtrs(p Pattern) []adt.Ctr {
	return util.UniqueBy(p.ctrsAcc(nil), func(c adt.Ctr) adt.Ctr { return c })
}

// Convert a pattern into the term it matches. A variable becomes a variable
// reference and a constructor becomes its name applied to its converted fields.
func PatternToTerm(p Pattern) term.Term {
	switch pt := p.(type) {
	case PVar:
		return term.Var{Nam: pt.Nam}
	case PCtr:
		return term.Call(term.Var{Nam: pt.Nam}, underscore.Map(pt.Args, PatternToTerm)...)
	default:
		panic(fmt.Sprintf("book: could not convert pattern %v to term", p))
	}
}

package adt

import (
	"fmt"
	"strings"

	"github.com/glossopoeia/interlang/compiler/ident"
)

// A constructor of an algebraic data type, and the number of fields it carries.
type Ctr struct {
	Name  ident.Name
	Arity int
}

func (c Ctr) String() string {
	if c.Arity == 0 {
		return c.Name.String()
	}
	return fmt.Sprintf("(%s%s)", c.Name, strings.Repeat(" _", c.Arity))
}

// A user defined datatype: its constructors in declaration order. The order
// is kept because later passes pick match-arm order from it.
type Adt struct {
	order []ident.Name
	arity map[ident.Name]int
}

func New(ctrs ...Ctr) *Adt {
	a := &Adt{arity: map[ident.Name]int{}}
	for _, c := range ctrs {
		a.Insert(c.Name, c.Arity)
	}
	return a
}

// Add a constructor. Re-inserting a constructor keeps its original position
// and replaces its arity.
func (a *Adt) Insert(name ident.Name, arity int) {
	if _, ok := a.arity[name]; !ok {
		a.order = append(a.order, name)
	}
	a.arity[name] = arity
}

func (a *Adt) Arity(name ident.Name) (int, bool) {
	ari, ok := a.arity[name]
	return ari, ok
}

func (a *Adt) Ctrs() []Ctr {
	res := make([]Ctr, len(a.order))
	for i, n := range a.order {
		res[i] = Ctr{n, a.arity[n]}
	}
	return res
}

func (a *Adt) Names() []ident.Name {
	return append([]ident.Name{}, a.order...)
}

func (a *Adt) Len() int {
	return len(a.order)
}

func (a *Adt) String() string {
	parts := make([]string, len(a.order))
	for i, c := range a.Ctrs() {
		parts[i] = c.String()
	}
	return strings.Join(parts, " | ")
}

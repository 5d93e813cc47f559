package book

import (
	"fmt"
	"strings"

	"github.com/glossopoeia/interlang/compiler/adt"
	"github.com/glossopoeia/interlang/compiler/defs"
	"github.com/glossopoeia/interlang/compiler/ident"
	"github.com/glossopoeia/interlang/compiler/term"
	"github.com/glossopoeia/interlang/compiler/util"
	"github.com/rjNemo/underscore"
)

// A pattern matching rule of a definition. The order of rules within a
// definition is significant to the pattern match compiler: the first rule
// that matches wins.
type Rule struct {
	Pats []Pattern
	Body term.Term
}

func (r Rule) Arity() int {
	return len(r.Pats)
}

// Render the rule as `(name pats...) = body`.
func (r Rule) Show(id ident.DefId, names *defs.DefNames) string {
	nam, ok := names.Name(id)
	if !ok {
		panic(fmt.Sprintf("book: rule of unregistered definition %s", id))
	}
	pats := underscore.Map(r.Pats, func(p Pattern) string { return " " + p.String() })
	return fmt.Sprintf("(%s%s) = %s", nam, strings.Join(pats, ""), term.Show(r.Body, names))
}

// A pattern matching function definition.
type Definition struct {
	DefId ident.DefId
	Rules []Rule
}

// The number of parameters of the definition. Every rule must take the same
// number of parameters; a definition that breaks this is a compiler bug and panics.
func (d *Definition) Arity() int {
	if len(d.Rules) == 0 {
		panic(fmt.Sprintf("book: definition %s has no rules", d.DefId))
	}
	ari := d.Rules[0].Arity()
	if !underscore.All(d.Rules, func(r Rule) bool { return r.Arity() == ari }) {
		panic(fmt.Sprintf("book: rules of definition %s have different arities", d.DefId))
	}
	return ari
}

// Pattern match compilation leaves every definition with a single rule.
func (d *Definition) AssertNoPatternMatchingRules() {
	if len(d.Rules) != 1 {
		panic(fmt.Sprintf("book: definition %s should have had its rules compiled away in an earlier pass, found %d", d.DefId, len(d.Rules)))
	}
}

func (d *Definition) Show(names *defs.DefNames) string {
	rules := underscore.Map(d.Rules, func(r Rule) string { return r.Show(d.DefId, names) })
	return strings.Join(rules, "\n")
}

// The representation of a program, handed from one compiler stage to the next.
// Definitions are only added and removed through InsertDef and RemoveDef, which
// keep Defs and DefNames in step.
type Book struct {
	// Mapping of definition names to ids.
	DefNames *defs.DefNames
	// The function definitions.
	Defs map[ident.DefId]*Definition
	// The algebraic datatypes defined by the program.
	Adts map[ident.Name]*adt.Adt
	// To which type each constructor belongs.
	Ctrs map[ident.Name]ident.Name
}

func New() *Book {
	return &Book{
		DefNames: defs.New(),
		Defs:     map[ident.DefId]*Definition{},
		Adts:     map[ident.Name]*adt.Adt{},
		Ctrs:     map[ident.Name]ident.Name{},
	}
}

func (b *Book) InsertDef(name ident.Name, rules []Rule) ident.DefId {
	id := b.DefNames.Insert(name)
	b.Defs[id] = &Definition{id, rules}
	return id
}

// Remove a definition and its name. Reports false, and changes nothing, if the
// handle is unknown to either side.
func (b *Book) RemoveDef(id ident.DefId) (ident.Name, *Definition, bool) {
	def, ok := b.Defs[id]
	if !ok || !b.DefNames.ContainsDefId(id) {
		return ident.None, nil, false
	}
	delete(b.Defs, id)
	nam, _ := b.DefNames.Remove(id)
	return nam, def, true
}

// The definition currently known by the name.
func (b *Book) Def(name ident.Name) (*Definition, bool) {
	id, ok := b.DefNames.DefId(name)
	if !ok {
		return nil, false
	}
	def, ok := b.Defs[id]
	return def, ok
}

// Add a datatype and index each of its constructors back to it.
func (b *Book) InsertAdt(name ident.Name, a *adt.Adt) {
	b.Adts[name] = a
	for _, c := range a.Names() {
		b.Ctrs[c] = name
	}
}

// The definitions that still have more than one rule.
func (b *Book) PatternMatchingDefs() map[ident.DefId]*Definition {
	return util.MapFilterValue(b.Defs, func(d *Definition) bool { return len(d.Rules) != 1 })
}

// Every definition must have exactly one rule once pattern matching has been
// compiled. Panics on the first one that does not.
func (b *Book) AssertSingleRule() {
	for _, id := range util.SortedKeys(b.PatternMatchingDefs()) {
		b.Defs[id].AssertNoPatternMatchingRules()
	}
}

func (b *Book) ShowAdts() string {
	res := []string{}
	for _, n := range util.SortedKeys(b.Adts) {
		res = append(res, fmt.Sprintf("data %s = %s", n, b.Adts[n]))
	}
	return strings.Join(res, "\n")
}

// The definitions in handle order, separated by blank lines.
func (b *Book) String() string {
	res := []string{}
	for _, id := range util.SortedKeys(b.Defs) {
		res = append(res, b.Defs[id].Show(b.DefNames))
	}
	return strings.Join(res, "\n\n")
}

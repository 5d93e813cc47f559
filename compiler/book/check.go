package book

import (
	"fmt"

	"github.com/glossopoeia/interlang/compiler/ident"
	"github.com/glossopoeia/interlang/compiler/term"
	"github.com/glossopoeia/interlang/compiler/util"
	set "github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// The definitions map and the registry disagree about which handles exist.
type DefKeysError struct {
	// Handles with a definition but no name.
	Unnamed []ident.DefId
	// Handles with a name but no definition.
	Undefined []ident.DefId
}

func (e DefKeysError) Error() string {
	return fmt.Sprintf("book: definitions and names disagree, unnamed %v, undefined %v", e.Unnamed, e.Undefined)
}

type NoRulesError struct{}

func (e NoRulesError) Error() string {
	return "book: definition has no rules"
}

// A rule takes a different number of parameters than the first rule.
type RuleArityError struct {
	Rule     int
	Expected int
	Found    int
}

func (e RuleArityError) Error() string {
	return fmt.Sprintf("book: rule %d takes %d parameters, expected %d", e.Rule, e.Found, e.Expected)
}

// A pattern uses a constructor that does not resolve to a datatype, or gives
// it the wrong number of fields.
type CtrError struct {
	Ctr ident.Name
	// The datatype the constructor index points to, absent if not indexed.
	Adt ident.Name
	// The number of fields the datatype declares, -1 if it is not declared.
	Expected int
	Found    int
}

func (e CtrError) Error() string {
	switch {
	case !e.Adt.Bound():
		return fmt.Sprintf("book: unknown constructor %s", e.Ctr)
	case e.Expected < 0:
		return fmt.Sprintf("book: constructor %s is not declared by type %s", e.Ctr, e.Adt)
	default:
		return fmt.Sprintf("book: constructor %s has %d fields, pattern gives %d", e.Ctr, e.Expected, e.Found)
	}
}

// A term references a handle the registry does not know.
type DanglingRefError struct {
	DefId ident.DefId
}

func (e DanglingRefError) Error() string {
	return fmt.Sprintf("book: reference to unregistered definition %s", e.DefId)
}

// Verify the invariants that every stage handing a book onward must establish:
// the definitions and the registry know the same handles, the rules of each
// definition share an arity, every constructor pattern resolves to a datatype
// declaring it with the same number of fields, and every reference resolves.
// Definitions are checked in handle order and the first violation is returned.
func (b *Book) Check() error {
	if err := b.checkKeys(); err != nil {
		return err
	}
	for _, id := range util.SortedKeys(b.Defs) {
		if err := b.checkDef(b.Defs[id]); err != nil {
			nam, _ := b.DefNames.Name(id)
			return errors.Wrapf(err, "in definition %s", nam)
		}
	}
	return nil
}

func (b *Book) checkKeys() error {
	defined := set.From(maps.Keys(b.Defs))
	named := set.From(b.DefNames.DefIds())
	unnamed, undefined := []ident.DefId{}, []ident.DefId{}
	for _, id := range defined.Slice() {
		if !named.Contains(id) {
			unnamed = append(unnamed, id)
		}
	}
	for _, id := range named.Slice() {
		if !defined.Contains(id) {
			undefined = append(undefined, id)
		}
	}
	if len(unnamed) == 0 && len(undefined) == 0 {
		return nil
	}
	slices.Sort(unnamed)
	slices.Sort(undefined)
	return DefKeysError{unnamed, undefined}
}

func (b *Book) checkDef(d *Definition) error {
	if len(d.Rules) == 0 {
		return NoRulesError{}
	}
	ari := d.Rules[0].Arity()
	for i, r := range d.Rules {
		if r.Arity() != ari {
			return RuleArityError{i, ari, r.Arity()}
		}
		for _, p := range r.Pats {
			if err := b.checkPattern(p); err != nil {
				return errors.Wrapf(err, "rule %d", i)
			}
		}
		for _, ref := range term.Refs(r.Body) {
			if !b.DefNames.ContainsDefId(ref) {
				return errors.Wrapf(DanglingRefError{ref}, "rule %d", i)
			}
		}
	}
	return nil
}

func (b *Book) checkPattern(p Pattern) error {
	for _, c := range PatternCtrs(p) {
		typ, ok := b.Ctrs[c.Name]
		if !ok {
			return CtrError{c.Name, ident.None, -1, c.Arity}
		}
		data, ok := b.Adts[typ]
		if !ok {
			return CtrError{c.Name, typ, -1, c.Arity}
		}
		ari, ok := data.Arity(c.Name)
		if !ok {
			return CtrError{c.Name, typ, -1, c.Arity}
		}
		if ari != c.Arity {
			return CtrError{c.Name, typ, ari, c.Arity}
		}
	}
	return nil
}

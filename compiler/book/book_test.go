package book

import (
	"testing"

	"github.com/glossopoeia/interlang/compiler/adt"
	"github.com/glossopoeia/interlang/compiler/ident"
	"github.com/glossopoeia/interlang/compiler/op"
	"github.com/glossopoeia/interlang/compiler/term"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func doubleRule() Rule {
	return Rule{
		Pats: []Pattern{PVar{"x"}},
		Body: term.Opx{Op: op.ADD, Fst: term.Var{Nam: "x"}, Snd: term.Var{Nam: "x"}},
	}
}

func listBook() *Book {
	b := New()
	b.InsertAdt("List", adt.New(adt.Ctr{Name: "Nil", Arity: 0}, adt.Ctr{Name: "Cons", Arity: 2}))
	return b
}

func TestShowDouble(t *testing.T) {
	b := New()
	id := b.InsertDef("double", []Rule{doubleRule()})
	exp := "(double x) = (+ x x)"
	if res := b.Defs[id].Show(b.DefNames); res != exp {
		t.Errorf("Expected %v, got %v instead", exp, res)
	}
	if res := b.String(); res != exp {
		t.Errorf("Expected %v, got %v instead", exp, res)
	}
}

func TestBookString(t *testing.T) {
	b := listBook()
	length := b.InsertDef("len", nil)
	b.Defs[length].Rules = []Rule{
		{[]Pattern{PCtr{"Nil", nil}}, term.Num{Val: 0}},
		{[]Pattern{PCtr{"Cons", []Pattern{PVar{ident.None}, PVar{"t"}}}}, term.Opx{Op: op.ADD, Fst: term.Num{Val: 1}, Snd: term.App{Fun: term.Ref{DefId: length}, Arg: term.Var{Nam: "t"}}}},
	}
	b.InsertDef("main", []Rule{{nil, term.Call(term.Ref{DefId: length}, term.Var{Nam: "Nil"})}})

	exp := "(len (Nil)) = 0\n(len (Cons * t)) = (+ 1 (len t))\n\n(main) = (len Nil)"
	if res := b.String(); res != exp {
		t.Errorf("Expected %q, got %q instead", exp, res)
	}
	if b.String() != b.String() {
		t.Errorf("Rendering the same book twice gave different text")
	}
	if res := b.ShowAdts(); res != "data List = Nil | (Cons _ _)" {
		t.Errorf("Expected the list datatype, got %v instead", res)
	}
}

func TestInsertRemoveDef(t *testing.T) {
	b := New()
	id := b.InsertDef("double", []Rule{doubleRule()})

	if _, ok := b.Defs[id]; !ok {
		t.Errorf("Expected the definition to be stored under %v", id)
	}
	if nam, ok := b.DefNames.Name(id); !ok || nam != "double" {
		t.Errorf("Expected %v to be named double, got %v (%v) instead", id, nam, ok)
	}
	if def, ok := b.Def("double"); !ok || def.DefId != id {
		t.Errorf("Expected double to resolve to its definition")
	}

	nam, def, ok := b.RemoveDef(id)
	if !ok || nam != "double" || def.DefId != id {
		t.Errorf("Expected to remove double, got %v %v (%v) instead", nam, def, ok)
	}
	if _, ok := b.Defs[id]; ok {
		t.Errorf("Expected the definition to be gone")
	}
	if b.DefNames.ContainsDefId(id) || b.DefNames.ContainsName("double") {
		t.Errorf("Expected the name to be gone")
	}

	if _, _, ok := b.RemoveDef(id); ok {
		t.Errorf("Expected removing twice to report absence")
	}
}

func TestInsertAdtIndexesCtrs(t *testing.T) {
	b := listBook()
	exp := map[ident.Name]ident.Name{"Nil": "List", "Cons": "List"}
	if !cmp.Equal(b.Ctrs, exp) {
		t.Errorf("Expected %v, got %v instead", exp, b.Ctrs)
	}
}

func TestPatternToTerm(t *testing.T) {
	data := []Pattern{
		PVar{"x"},
		PCtr{"Nil", nil},
		PCtr{"Cons", []Pattern{PVar{"h"}, PCtr{"Cons", []Pattern{PVar{"a"}, PVar{"b"}}}}},
	}

	testCases := []struct {
		name string
		exp  term.Term
	}{
		{"Var", term.Var{Nam: "x"}},
		{"NullaryCtr", term.Var{Nam: "Nil"}},
		{"NestedCtr", term.App{
			Fun: term.App{Fun: term.Var{Nam: "Cons"}, Arg: term.Var{Nam: "h"}},
			Arg: term.App{
				Fun: term.App{Fun: term.Var{Nam: "Cons"}, Arg: term.Var{Nam: "a"}},
				Arg: term.Var{Nam: "b"},
			},
		}},
	}

	for ind, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := PatternToTerm(data[ind])
			if !cmp.Equal(res, tc.exp) {
				t.Errorf("Expected %v, got %v instead", tc.exp, res)
			}
		})
	}
}

func TestPatternCtrs(t *testing.T) {
	p := PCtr{"Cons", []Pattern{PCtr{"Nil", nil}, PCtr{"Cons", []Pattern{PVar{"a"}, PCtr{"Nil", nil}}}}}
	res := PatternCtrs(p)
	exp := []adt.Ctr{{Name: "Cons", Arity: 2}, {Name: "Nil", Arity: 0}}
	if !cmp.Equal(res, exp) {
		t.Errorf("Expected %v, got %v instead", exp, res)
	}
}

func TestArity(t *testing.T) {
	d := Definition{0, []Rule{
		{[]Pattern{PVar{"a"}, PVar{"b"}}, term.Era{}},
		{[]Pattern{PVar{"c"}, PVar{"d"}}, term.Era{}},
	}}
	if d.Arity() != 2 {
		t.Errorf("Expected arity 2, got %v instead", d.Arity())
	}
}

func TestArityPanics(t *testing.T) {
	testCases := []struct {
		name string
		def  Definition
	}{
		{"Mismatched", Definition{0, []Rule{{[]Pattern{PVar{"a"}}, term.Era{}}, {nil, term.Era{}}}}},
		{"NoRules", Definition{0, nil}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected Arity to panic")
				}
			}()
			tc.def.Arity()
		})
	}
}

func TestAssertSingleRule(t *testing.T) {
	b := New()
	b.InsertDef("double", []Rule{doubleRule()})
	b.AssertSingleRule()

	id := b.InsertDef("twice", []Rule{doubleRule(), doubleRule()})
	if res := b.PatternMatchingDefs(); len(res) != 1 || res[id] == nil {
		t.Errorf("Expected only twice to still need compiling, got %v instead", res)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Expected a multi-rule definition to fail the single rule assertion")
		}
	}()
	b.AssertSingleRule()
}

func TestCheck(t *testing.T) {
	valid := func() *Book {
		b := listBook()
		b.InsertDef("head", []Rule{
			{[]Pattern{PCtr{"Cons", []Pattern{PVar{"h"}, PVar{ident.None}}}}, term.Var{Nam: "h"}},
			{[]Pattern{PCtr{"Nil", nil}}, term.Era{}},
		})
		return b
	}

	testCases := []struct {
		name   string
		build  func() *Book
		expErr error
	}{
		{"Valid", valid, nil},
		{"UnnamedDef", func() *Book {
			b := valid()
			b.Defs[9] = &Definition{9, []Rule{doubleRule()}}
			return b
		}, DefKeysError{[]ident.DefId{9}, []ident.DefId{}}},
		{"UndefinedName", func() *Book {
			b := valid()
			b.DefNames.Insert("ghost")
			return b
		}, DefKeysError{[]ident.DefId{}, []ident.DefId{1}}},
		{"NoRules", func() *Book {
			b := valid()
			b.InsertDef("empty", nil)
			return b
		}, NoRulesError{}},
		{"RuleArity", func() *Book {
			b := valid()
			b.InsertDef("bad", []Rule{doubleRule(), {nil, term.Era{}}})
			return b
		}, RuleArityError{1, 1, 0}},
		{"UnknownCtr", func() *Book {
			b := valid()
			b.InsertDef("bad", []Rule{{[]Pattern{PCtr{"Leaf", nil}}, term.Era{}}})
			return b
		}, CtrError{"Leaf", ident.None, -1, 0}},
		{"MissingAdt", func() *Book {
			b := valid()
			delete(b.Adts, "List")
			return b
		}, CtrError{"Cons", "List", -1, 2}},
		{"CtrArity", func() *Book {
			b := valid()
			b.InsertDef("bad", []Rule{{[]Pattern{PCtr{"Cons", []Pattern{PVar{"h"}}}}, term.Era{}}})
			return b
		}, CtrError{"Cons", "List", 2, 1}},
		{"DanglingRef", func() *Book {
			b := valid()
			b.InsertDef("bad", []Rule{{nil, term.Ref{DefId: 42}}})
			return b
		}, DanglingRefError{42}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build().Check()
			if tc.expErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v instead", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error %v, got none", tc.expErr)
			}
			if !cmp.Equal(errors.Cause(err), tc.expErr) {
				t.Errorf("Expected error %v, got %v instead", tc.expErr, err)
			}
		})
	}
}

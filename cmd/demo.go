/*
Copyright © 2023 Glossopoeia
*/
package cmd

import (
	"fmt"

	"github.com/glossopoeia/interlang/compiler/adt"
	"github.com/glossopoeia/interlang/compiler/book"
	"github.com/glossopoeia/interlang/compiler/defs"
	"github.com/glossopoeia/interlang/compiler/ident"
	"github.com/glossopoeia/interlang/compiler/op"
	"github.com/glossopoeia/interlang/compiler/term"
	"github.com/spf13/cobra"
)

// A small program touching every part of the term layer: a datatype matched
// by a multi-rule definition, explicit duplication, a numeric match and a
// scopeless lambda.
func sampleBook() *book.Book {
	b := book.New()
	b.InsertAdt("List", adt.New(adt.Ctr{Name: "Nil", Arity: 0}, adt.Ctr{Name: "Cons", Arity: 2}))

	length := b.InsertDef("len", nil)
	b.Defs[length].Rules = []book.Rule{
		{Pats: []book.Pattern{book.PCtr{Nam: "Nil"}}, Body: term.Num{Val: 0}},
		{
			Pats: []book.Pattern{book.PCtr{Nam: "Cons", Args: []book.Pattern{book.PVar{Nam: ident.None}, book.PVar{Nam: "t"}}}},
			Body: term.Opx{Op: op.ADD, Fst: term.Num{Val: 1}, Snd: term.Call(term.Ref{DefId: length}, term.Var{Nam: "t"})},
		},
	}

	double := b.InsertDef("double", []book.Rule{{
		Pats: []book.Pattern{book.PVar{Nam: "x"}},
		Body: term.Dup{Fst: "a", Snd: "b", Val: term.Var{Nam: "x"}, Nxt: term.Opx{Op: op.ADD, Fst: term.Var{Nam: "a"}, Snd: term.Var{Nam: "b"}}},
	}})

	b.InsertDef("pred", []book.Rule{{
		Pats: []book.Pattern{book.PVar{Nam: "n"}},
		Body: term.NewMatch(term.Var{Nam: "n"}, term.Num{Val: 0}, "p", term.Var{Nam: "p"}),
	}})

	b.InsertDef("both", []book.Rule{{
		Body: term.Chn{Nam: "k", Bod: term.Lam{Nam: "x", Bod: term.Sup{Fst: term.Var{Nam: "x"}, Snd: term.Lnk{Nam: "k"}}}},
	}})

	list := term.Call(term.Var{Nam: "Cons"}, term.Num{Val: 7}, term.Var{Nam: "Nil"})
	b.InsertDef(defs.EntryPoint, []book.Rule{{
		Body: term.Call(term.Ref{DefId: double}, term.Call(term.Ref{DefId: length}, list)),
	}})
	return b
}

func newDemoCmd() *cobra.Command {
	var check, refs bool
	demo := &cobra.Command{
		Use:   "demo",
		Short: "Check and render a sample program",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := sampleBook()
			if check {
				if err := b.Check(); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n%s\n", b.ShowAdts(), b)
			if refs {
				fmt.Fprintln(out)
				for _, id := range b.DefNames.DefIds() {
					nam, _ := b.DefNames.Name(id)
					fmt.Fprintf(out, "%s\t%d\t@%d\n", nam, ident.Val(id), id.ToInternal())
				}
			}
			return nil
		},
	}
	demo.Flags().BoolVar(&check, "check", true, "verify the program invariants before rendering")
	demo.Flags().BoolVar(&refs, "refs", false, "list each definition's handle and runtime reference")
	return demo
}

/*
Copyright © 2023 Glossopoeia
*/
package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/glossopoeia/interlang/compiler/ident"
	"github.com/spf13/cobra"
)

func parseVal(s string) (ident.Val, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("ref: invalid number %q: %w", s, err)
	}
	return ident.Val(v), nil
}

func newRefCmd() *cobra.Command {
	ref := &cobra.Command{
		Use:   "ref",
		Short: "Convert between definition handles and runtime references",
	}

	encode := &cobra.Command{
		Use:   "encode <handle>",
		Short: "Print the runtime reference of a definition handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVal(args[0])
			if err != nil {
				return err
			}
			if v == math.MaxUint32 {
				return fmt.Errorf("ref: handle %d has no runtime reference", v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ident.DefId(v).ToInternal())
			return nil
		},
	}

	decode := &cobra.Command{
		Use:   "decode <reference>",
		Short: "Print the definition handle of a runtime reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVal(args[0])
			if err != nil {
				return err
			}
			if v == 0 {
				return fmt.Errorf("ref: reference 0 does not name a definition")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ident.Val(ident.FromInternal(v)))
			return nil
		},
	}

	ref.AddCommand(encode, decode)
	return ref
}

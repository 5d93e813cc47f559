/*
Copyright © 2023 Glossopoeia
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/glossopoeia/interlang/compiler/ident"
	"github.com/glossopoeia/interlang/compiler/util"
	"github.com/spf13/cobra"
)

func newNamesCmd() *cobra.Command {
	var count int
	names := &cobra.Command{
		Use:   "names [index...]",
		Short: "Print the display names derived from variable indexes",
		Example: `  interlang names 0 25 26
  interlang names --count 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if count > 0 {
				fresh := util.NewNameFresh()
				for i, n := range fresh.NextN(count) {
					fmt.Fprintf(out, "%d\t%s\n", i, n)
				}
			}
			for _, a := range args {
				ind, err := strconv.ParseUint(a, 10, 32)
				if err != nil {
					return fmt.Errorf("names: invalid index %q: %w", a, err)
				}
				fmt.Fprintf(out, "%d\t%s\n", ind, ident.VarIdToName(ident.Val(ind)))
			}
			return nil
		},
	}
	names.Flags().IntVarP(&count, "count", "n", 0, "print the first n names in order")
	return names
}

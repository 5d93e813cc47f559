/*
Copyright © 2023 Glossopoeia
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "interlang",
		Short: "Inspect the term layer of the interaction net compiler",
		Long: `interlang exposes the term representation used between compiler stages:
the base-26 names given to anonymous variables, the transcoding of definition
handles into runtime references, and the canonical rendering of programs.`,
		SilenceUsage: true,
	}
	root.AddCommand(newNamesCmd(), newRefCmd(), newDemoCmd())
	return root
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

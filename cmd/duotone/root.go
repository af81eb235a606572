package main

import (
	"github.com/spf13/cobra"
	"github.com/walteh/duotone/cmd/duotone/commands"
	"github.com/walteh/duotone/cmd/duotone/opts"
)

// newRootCmd wires the rewrite command with its subcommands
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	root := commands.NewRewriteCmd(o)
	root.SetOut(o.Stdout)
	root.SetErr(o.Stderr)

	root.AddCommand(
		commands.NewRulesCmd(o),
		newVersionCmd(o),
	)

	return root
}

package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/walteh/duotone/cmd/duotone/opts"
	"github.com/walteh/duotone/pkg/palette"
)

// NewRulesCmd creates the rules command
func NewRulesCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the color rules in the order they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set := palette.Default()
			for i, category := range set {
				if i > 0 {
					fmt.Fprintln(o.Stdout)
				}
				fmt.Fprintf(o.Stdout, "%s %s\n",
					color.New(color.Bold, color.FgCyan).Sprint(category.Name),
					color.New(color.Faint).Sprintf("(%d rules)", len(category.Rules)))
				for _, rule := range category.Rules {
					fmt.Fprintf(o.Stdout, "  %s\n", rule.Description())
				}
			}
			return nil
		},
	}

	return cmd
}

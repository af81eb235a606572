package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/duotone/cmd/duotone/opts"
	"github.com/walteh/duotone/pkg/log"
	"github.com/walteh/duotone/pkg/report"
	"github.com/walteh/duotone/pkg/rewrite"
	"gitlab.com/tozd/go/errors"
)

// NewRewriteCmd creates the rewrite command, used as the root of the CLI
func NewRewriteCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duotone [path]",
		Short: "Rewrite light-mode color classes into neutral light/dark pairs",
		Long: `duotone rewrites Tailwind color classes in a single document.
Light mode gets neutral black tones with a blue accent for number displays;
the original vibrant class is kept behind a dark: variant.

It will:
1. Read the whole document
2. Apply icon, number, gradient, border and code color rules in order
3. Write the document back in place
4. Print every rule that fired with its count

Classes that already have a dark: variant are left alone, so running it
twice is safe.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			ctx := o.Logger().WithContext(cmd.Context())
			cmd.SetContext(log.NewContext(ctx, o.Console()))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.DefaultTarget
			if len(args) == 1 {
				path = args[0]
			}
			return runRewrite(cmd.Context(), o, path)
		},
	}

	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVarP(&o.DryRun, "dry-run", "n", false, "show the changes without writing the file")
	cmd.Flags().StringVarP(&o.Output, "output", "o", opts.OutputText, "report format: text, yaml or json")

	return cmd
}

func runRewrite(ctx context.Context, o *opts.RootOpts, path string) error {
	rw, err := rewrite.New(rewrite.Options{Fs: o.Fs, DryRun: o.DryRun})
	if err != nil {
		return errors.Errorf("creating rewriter: %w", err)
	}

	if o.Output != opts.OutputText {
		result, err := rw.Rewrite(ctx, path)
		if err != nil {
			return errors.Errorf("rewriting %s: %w", path, err)
		}
		formatter, err := report.NewFormatter(o.Output)
		if err != nil {
			return err
		}
		data, err := formatter.Format(report.FromResult(result, o.DryRun))
		if err != nil {
			return errors.Errorf("formatting report: %w", err)
		}
		_, err = o.Stdout.Write(data)
		return err
	}

	console := log.FromContext(ctx)
	console.Banner(path)

	result, err := rw.Rewrite(ctx, path)
	if err != nil {
		return errors.Errorf("rewriting %s: %w", path, err)
	}

	console.LogChanges(ctx, result.Changes)
	console.LogNewline()
	if len(result.Changes) == 0 {
		console.Warningf("No color classes matched in %s", path)
	}

	if o.DryRun {
		if err := report.WriteDiff(o.Stdout, string(result.Before), string(result.After)); err != nil {
			return errors.Errorf("writing diff: %w", err)
		}
		if len(result.Changes) > 0 {
			fmt.Fprintln(o.Stdout)
		}
		console.Infof("Dry run: %s not written", path)
		return nil
	}

	console.Successf("File updated: %s", path)
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yashkumarverma/minicron/src/expression"
)

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [name]",
		Short: "List the built-in named expressions, or expand one of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				spec, err := a.catalog.Lookup(args[0])
				if err != nil {
					return err
				}
				return a.printExpression(cmd, spec, 0)
			}

			failures := expression.Validate(cmd.Context(), a.parser, a.catalog)
			out := cmd.OutOrStdout()
			for _, name := range a.catalog.Names() {
				entry, _ := a.catalog.Entry(name)
				status := "ok"
				if err, failed := failures[name]; failed {
					status = "invalid: " + err.Error()
				}
				fmt.Fprintf(out, "%-18s %-28s %s (%s)\n", name, entry.Expression, entry.Description, status)
			}
			return nil
		}),
	}
}

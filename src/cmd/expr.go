package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/yashkumarverma/minicron/src/cronfield"
	"github.com/yashkumarverma/minicron/src/expression"
)

func newExprCmd(a *app) *cobra.Command {
	var next int
	cmd := &cobra.Command{
		Use:   "expr <expression>",
		Short: "Expand every field of a 5 or 6 field expression",
		Example: `  minicron expr "*/15 9-17 * * MON-FRI"
  minicron expr --next 5 "0 0 1 JAN *"`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			return a.printExpression(cmd, strings.Join(args, " "), next)
		}),
	}
	cmd.Flags().IntVarP(&next, "next", "n", 0, "Also print the next N activation times")
	return cmd
}

func (a *app) printExpression(cmd *cobra.Command, spec string, next int) error {
	expr, err := a.parser.Parse(cmd.Context(), spec)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	writeFields(out, expr)
	if next <= 0 {
		return nil
	}

	loc, err := a.config.Location()
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", a.config.Timezone, err)
	}
	times, err := expr.Next(time.Now().In(loc), next)
	if err != nil {
		return err
	}
	for _, t := range times {
		fmt.Fprintf(out, "%-13s %s\n", "next", t.Format(time.RFC3339))
	}
	return nil
}

func writeFields(out io.Writer, expr *expression.Expression) {
	for _, field := range cronfield.Fields() {
		fmt.Fprintf(out, "%-13s %s\n", field, joinInts(expr.Field(field).Values))
	}
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yashkumarverma/minicron/src/cronfield"
)

func newFieldCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "field <field> <text>",
		Short: "Expand a single field",
		Example: `  minicron field minutes "17, 19/3, 1"
  minicron field dow "SUN, MON, TUE-THU/1, THU-SAT"`,
		Args: cobra.MinimumNArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			field, err := cronfield.ParseFieldName(args[0])
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			values, err := a.parser.ParseField(cmd.Context(), field, text)
			if err != nil {
				return fmt.Errorf("%s field %q: %w", field, text, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinInts(values))
			return nil
		}),
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

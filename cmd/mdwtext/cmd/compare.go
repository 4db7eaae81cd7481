package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mdwtext/foundation/utils/textx"
)

func newCompareCmd() *cobra.Command {
	var fold bool

	cmd := &cobra.Command{
		Use:   "compare A B",
		Short: "Order two values bytewise",
		Long: `Print -1, 0 or 1 as A orders before, equal to or after B.
With --fold, print whether A and B are equal ignoring ASCII case.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := textx.New(args[0]), textx.New(args[1])
			defer a.Release()
			defer b.Release()

			if fold {
				fmt.Fprintln(cmd.OutOrStdout(), a.EqualFold(b))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.Compare(b))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fold, "fold", false, "compare ignoring ASCII case")
	return cmd
}

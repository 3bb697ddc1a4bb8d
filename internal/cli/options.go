package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/colorcompare/pkg/compare"
	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

func newOptionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "options [A B]",
		Short: "List the color and pigment names available as filters",
		Args:  pairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nameA, nameB, err := a.pickPair(args)
			if err != nil {
				return err
			}
			pair, err := a.newPair()
			if err != nil {
				return err
			}
			defer pair.Close()

			docA, docB := pair.Fetch(contextOf(cmd), nameA, nameB)
			opts := compare.AvailableFilters(compare.Extract(docA), compare.Extract(docB))
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), opts)
			}
			printOptions(cmd.OutOrStdout(), opts)
			return nil
		},
	}
}

func printOptions(w io.Writer, opts types.FilterOptions) {
	fmt.Fprintln(w, "Colors:")
	for _, c := range opts.Colors {
		fmt.Fprintf(w, "  %s\n", c)
	}
	fmt.Fprintln(w, "Pigments:")
	for _, p := range opts.Pigments {
		fmt.Fprintf(w, "  %s\n", p)
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/colorcompare/pkg/compare"
)

func newCompareCmd(a *app) *cobra.Command {
	var f viewFlags
	cmd := &cobra.Command{
		Use:   "compare [A B]",
		Short: "Compare the color analyses of two datasets",
		Long: "Load two datasets in parallel, group their entries by color name and print them\n" +
			"as aligned rows. Without arguments the first two catalog datasets are compared.\n" +
			"--color and --pigment may be repeated; an entry is kept if it matches any of them.",
		Args: pairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd, args, f)
		},
	}
	f.register(cmd)
	return cmd
}

func (a *app) runCompare(cmd *cobra.Command, args []string, f viewFlags) error {
	nameA, nameB, err := a.pickPair(args)
	if err != nil {
		return err
	}
	order, err := a.order(f.order)
	if err != nil {
		return err
	}
	if _, err := a.renderer(f.format); err != nil {
		return err
	}

	pair, err := a.newPair()
	if err != nil {
		return err
	}
	defer pair.Close()

	docA, docB := pair.Fetch(contextOf(cmd), nameA, nameB)
	view := compare.Run(compare.Input{
		A:       compare.SideFromDocument(nameA, docA),
		B:       compare.SideFromDocument(nameB, docB),
		Filters: f.filters(),
		Order:   order,
	})
	return a.writeView(cmd, view, f)
}

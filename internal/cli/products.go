package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/colorcompare/pkg/compare"
	"github.com/mesh-intelligence/colorcompare/pkg/types"
)

func newProductsCmd(a *app) *cobra.Command {
	var f viewFlags
	cmd := &cobra.Command{
		Use:   "products [A B]",
		Short: "List products, or compare two of them",
		Long: "Without arguments, list the products in the products document. With two\n" +
			"arguments (index or exact name), compare their color specs with object headers.",
		Args: pairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProducts(cmd, args, f)
		},
	}
	f.register(cmd)
	return cmd
}

func (a *app) runProducts(cmd *cobra.Command, args []string, f viewFlags) error {
	fetch, err := a.fetcher()
	if err != nil {
		return err
	}
	products := compare.ExtractProducts(fetch.Fetch(contextOf(cmd), a.cfg.ProductsFile))

	if len(args) == 0 {
		return a.listProducts(cmd, products)
	}

	order, err := a.order(f.order)
	if err != nil {
		return err
	}
	pa, err := compare.FindProduct(products, args[0])
	if err != nil {
		return err
	}
	pb, err := compare.FindProduct(products, args[1])
	if err != nil {
		return err
	}

	view := compare.Run(compare.Input{
		A:       compare.SideFromProduct(pa),
		B:       compare.SideFromProduct(pb),
		Filters: f.filters(),
		Order:   order,
	})
	return a.writeView(cmd, view, f)
}

func (a *app) listProducts(cmd *cobra.Command, products []types.Product) error {
	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		infos := make([]types.ObjectInfo, 0, len(products))
		for _, p := range products {
			infos = append(infos, p.Info)
		}
		return writeJSON(out, infos)
	}
	if len(products) == 0 {
		fmt.Fprintf(out, "No products in %s\n", a.cfg.ProductsFile)
		return nil
	}
	for i, p := range products {
		fmt.Fprintf(out, "%d\t%s\t%s\t%d entries\n", i, p.Info.Label, p.Info.AccessionNumber, len(p.Entries))
	}
	return nil
}

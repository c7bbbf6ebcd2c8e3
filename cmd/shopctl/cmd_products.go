package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	productsCategory string
	productsRefresh  bool
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		products, err := st.Products(cmd.Context(), productsCategory, productsRefresh)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			fmt.Println(faintStyle.Render("no products"))
			return nil
		}
		for _, p := range products {
			stock := okStyle.Render("in stock")
			if !p.InStock {
				stock = failStyle.Render("out of stock")
			}
			fmt.Printf("%s  %s  %s  %s\n", faintStyle.Render(p.ID), p.Title, price(p.Price), stock)
		}
		return nil
	},
}

func init() {
	productsCmd.Flags().StringVarP(&productsCategory, "category", "c", "", "filter by category")
	productsCmd.Flags().BoolVar(&productsRefresh, "refresh", false, "bypass the local product cache")
	rootCmd.AddCommand(productsCmd)
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bloomshop/internal/domain"
	"bloomshop/internal/store"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and mutate the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		if !st.SignedIn() {
			fmt.Println(faintStyle.Render("not signed in"))
			return nil
		}
		if err := st.Hydrate(cmd.Context()); err != nil {
			return err
		}

		snap := st.Snapshot()
		if len(snap.Cart) == 0 {
			fmt.Println(faintStyle.Render("cart is empty"))
			return nil
		}

		fmt.Println(titleStyle.Render("Cart"))
		for _, item := range snap.Cart {
			fmt.Printf("%s  %dx %s  %s\n", faintStyle.Render(item.ID), item.Quantity, item.Title, price(item.Price*float64(item.Quantity)))
		}
		quote := st.CartQuote()
		fmt.Printf("\nsubtotal %s  tax %s  shipping %s\n", price(quote.Subtotal), price(quote.Tax), price(quote.Shipping))
		fmt.Printf("total %s\n", price(quote.Total))
		return nil
	},
}

// findProduct resolves a catalog id, refreshing the cache on a miss.
func findProduct(ctx context.Context, st *store.Store, id string) (*domain.Product, error) {
	for _, refresh := range []bool{false, true} {
		products, err := st.Products(ctx, "", refresh)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			if p.ID == id {
				return &p, nil
			}
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		p, err := findProduct(cmd.Context(), st, args[0])
		if err != nil {
			return err
		}
		if err := st.AddToCart(cmd.Context(), *p); err != nil {
			return err
		}
		fmt.Printf("%s added %s, cart now %d items, total %s\n",
			okStyle.Render("✓"), p.Title, st.CartItemCount(), price(st.CartTotal()))
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "rm <line-id>",
	Short: "Remove a cart line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		if err := st.RemoveFromCart(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("%s removed, cart now %d items\n", okStyle.Render("✓"), st.CartItemCount())
		return nil
	},
}

var cartQtyCmd = &cobra.Command{
	Use:   "qty <line-id> <quantity>",
	Short: "Set a cart line's quantity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var quantity int
		if _, err := fmt.Sscanf(args[1], "%d", &quantity); err != nil {
			return fmt.Errorf("quantity must be a number: %q", args[1])
		}

		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		if err := st.UpdateQuantity(cmd.Context(), args[0], quantity); err != nil {
			return err
		}
		fmt.Printf("%s cart total now %s\n", okStyle.Render("✓"), price(st.CartTotal()))
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		if err := st.ClearCart(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("✓") + " cart cleared")
		return nil
	},
}

func init() {
	cartCmd.AddCommand(cartAddCmd, cartRemoveCmd, cartQtyCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}

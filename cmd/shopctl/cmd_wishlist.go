package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Show and mutate the wishlist",
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
		if len(snap.Wishlist) == 0 {
			fmt.Println(faintStyle.Render("wishlist is empty"))
			return nil
		}

		fmt.Println(titleStyle.Render("Wishlist"))
		for _, item := range snap.Wishlist {
			stock := okStyle.Render("in stock")
			if !item.InStock {
				stock = failStyle.Render("out of stock")
			}
			fmt.Printf("%s  %s  %s  %s\n", faintStyle.Render(item.ID), item.Title, price(item.Price), stock)
		}
		return nil
	},
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the wishlist",
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
		if err := st.AddToWishlist(cmd.Context(), *p); err != nil {
			return err
		}
		fmt.Printf("%s saved %s for later\n", okStyle.Render("✓"), p.Title)
		return nil
	},
}

var wishlistRemoveCmd = &cobra.Command{
	Use:   "rm <item-id>",
	Short: "Remove a wishlist item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		if err := st.RemoveFromWishlist(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("✓") + " removed")
		return nil
	},
}

var wishlistClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the wishlist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		if err := st.ClearWishlist(cmd.Context()); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("✓") + " wishlist cleared")
		return nil
	},
}

var wishlistMoveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move every wishlist item into the cart",
	Long: `Move every wishlist item into the cart.

Items are moved one at a time. An item that fails to move stays on the
wishlist, items already moved stay in the cart.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		results, err := st.MoveAllToCart(cmd.Context())
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println(faintStyle.Render("wishlist is empty"))
			return nil
		}

		moved := 0
		for _, r := range results {
			if r.Moved {
				moved++
				fmt.Printf("%s %s\n", okStyle.Render("✓"), r.Item.Title)
			} else {
				fmt.Printf("%s %s: %v\n", failStyle.Render("✗"), r.Item.Title, r.Err)
			}
		}
		fmt.Printf("\nmoved %d of %d, cart now %d items\n", moved, len(results), st.CartItemCount())
		return nil
	},
}

func init() {
	wishlistCmd.AddCommand(wishlistAddCmd, wishlistRemoveCmd, wishlistClearCmd, wishlistMoveCmd)
	rootCmd.AddCommand(wishlistCmd)
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bloomshop/internal/store"
	"bloomshop/internal/tracking"
)

var checkout store.CheckoutInput

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Place and track orders",
}

var orderPlaceCmd = &cobra.Command{
	Use:   "place",
	Short: "Check out the current cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		if err := st.Hydrate(cmd.Context()); err != nil {
			return err
		}

		o, err := st.PlaceOrder(cmd.Context(), checkout)
		if err != nil {
			if o != nil {
				// Order exists server-side even though the local cart
				// could not be cleared.
				fmt.Printf("%s order %s placed, but: %v\n", failStyle.Render("!"), o.ID, err)
				return nil
			}
			return err
		}

		fmt.Printf("%s order %s placed\n", okStyle.Render("✓"), o.ID)
		fmt.Printf("total %s (%s items, shipping %s, tax %s)\n",
			price(o.Total), faintStyle.Render(fmt.Sprintf("%d", len(o.Cart))), price(o.Shipping), price(o.Tax))
		return nil
	},
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		orders, err := st.Orders(cmd.Context())
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println(faintStyle.Render("no orders yet"))
			return nil
		}
		for _, o := range orders {
			progress := tracking.Estimate(o, time.Now())
			fmt.Printf("%s  %s  %s  %s\n",
				faintStyle.Render(o.ID),
				o.CreatedAt.Local().Format("2006-01-02"),
				price(o.Total),
				tracking.Stages[progress.Stage].Name)
		}
		return nil
	},
}

var orderTrackCmd = &cobra.Command{
	Use:   "track <order-id>",
	Short: "Show delivery progress for an order",
	Long: `Show delivery progress for an order.

Accepts a full order id, any unique fragment of one, or the last six
characters shown on the receipt. Works without signing in.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closer, err := openStore()
		if err != nil {
			return err
		}
		defer closer()

		o, err := st.FindOrderByPartialID(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		progress := tracking.Estimate(*o, time.Now())

		fmt.Println(titleStyle.Render("Order " + o.ID))
		fmt.Printf("placed %s, total %s\n\n", o.CreatedAt.Local().Format("2006-01-02 15:04"), price(o.Total))
		for i, stage := range tracking.Stages {
			marker := faintStyle.Render("○")
			name := faintStyle.Render(stage.Name)
			if i < progress.Stage || progress.Delivered {
				marker = okStyle.Render("●")
				name = stage.Name
			} else if i == progress.Stage {
				marker = barStyle.Render("●")
				name = stage.Name + "  " + faintStyle.Render(stage.Description)
			}
			fmt.Printf(" %s %s\n", marker, name)
		}
		fmt.Println()
		fmt.Println(progressBar(progress.Percent, 30))
		fmt.Println(faintStyle.Render("estimated delivery " + progress.EstimatedDelivery.Local().Format("Mon Jan 2")))
		fmt.Println(tracking.FormatRemaining(progress))
		return nil
	},
}

func init() {
	orderPlaceCmd.Flags().StringVar(&checkout.Name, "name", "", "recipient name")
	orderPlaceCmd.Flags().StringVar(&checkout.Address, "address", "", "street address")
	orderPlaceCmd.Flags().StringVar(&checkout.City, "city", "", "city")
	orderPlaceCmd.Flags().StringVar(&checkout.PostalCode, "postal-code", "", "postal code")
	orderPlaceCmd.Flags().StringVar(&checkout.Phone, "phone", "", "phone number")

	orderCmd.AddCommand(orderPlaceCmd, orderListCmd, orderTrackCmd)
	rootCmd.AddCommand(orderCmd)
}

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/storefront"
	"github.com/Areeb006/FAJR/internal/view"
)

func newCartCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and edit the shopping cart",
	}
	cmd.AddCommand(
		newCartShowCmd(c),
		newCartAddCmd(c),
		newCartSetCmd(c),
		newCartStepCmd(c, "inc", "Increase a line's quantity by one", (*storefront.CartPage).Increment),
		newCartStepCmd(c, "dec", "Decrease a line's quantity by one", (*storefront.CartPage).Decrement),
		newCartStepCmd(c, "remove", "Remove a line from the cart", (*storefront.CartPage).Remove),
	)
	return cmd
}

func newCartShowCmd(c *cli) *cobra.Command {
	var checked []string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show cart lines and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.app.CartPage.Check(checked...)
			v, err := c.app.CartPage.View(cmd.Context())
			if err != nil {
				return err
			}
			c.print(c.app.Renderer.Cart(v))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&checked, "check", nil, "product ids to mark as selected")
	return cmd
}

func newCartAddCmd(c *cli) *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:   "add ID",
		Short: "Add a product to the cart and show the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := c.app.Catalog.AddToCart(ctx, domain.ID(args[0]), qty); err != nil {
				return err
			}
			v, err := c.app.CartPage.View(ctx)
			if err != nil {
				return err
			}
			c.print(c.app.Renderer.Cart(v))
			return nil
		},
	}
	cmd.Flags().IntVarP(&qty, "qty", "q", 1, "quantity to add (at most 10 per product)")
	return cmd
}

func newCartSetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "set ID QTY",
		Short: "Set a line's quantity (clamped to 1..10)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := storefront.ParseQuantity(args[1])
			if err != nil {
				return err
			}
			v, err := c.app.CartPage.SetQuantity(cmd.Context(), args[0], qty)
			if err != nil {
				return err
			}
			c.print(c.app.Renderer.Cart(v))
			return nil
		},
	}
}

// cartStep is a single-line cart mutation such as CartPage.Increment.
type cartStep func(p *storefront.CartPage, ctx context.Context, productID string) (view.CartView, error)

func newCartStepCmd(c *cli, use, short string, step cartStep) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := step(c.app.CartPage, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c.print(c.app.Renderer.Cart(v))
			return nil
		},
	}
}

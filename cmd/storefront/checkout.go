package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newCheckoutCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Stage cart lines for checkout",
		Long: `checkout stages a selection of cart lines for the checkout page. The
selection is kept in local storage until it is consumed or replaced.`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "all",
			Short: "Stage every cart line",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := c.app.CartPage.ShopAll(cmd.Context()); err != nil {
					return err
				}
				return c.printStaged(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "single ID",
			Short: "Stage one cart line",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := c.app.CartPage.ShopNow(cmd.Context(), args[0]); err != nil {
					return err
				}
				return c.printStaged(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "selected [ID...]",
			Short: "Stage the given cart lines",
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c.app.CartPage.Check(args...)
				if _, err := c.app.CartPage.ShopSelected(cmd.Context()); err != nil {
					return err
				}
				return c.printStaged(cmd.Context())
			},
		},
		newCheckoutShowCmd(c),
	)
	return cmd
}

func newCheckoutShowCmd(c *cli) *cobra.Command {
	var consume bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the staged selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := c.printStaged(ctx); err != nil {
				return err
			}
			if consume {
				_, err := c.app.Checkout.Consume(ctx)
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&consume, "consume", false, "clear the selection after showing it")
	return cmd
}

func (c *cli) printStaged(ctx context.Context) error {
	items, err := c.app.Checkout.Staged(ctx)
	if err != nil {
		return err
	}
	c.print(c.app.Renderer.CheckoutItems(items))
	return nil
}

package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/listing"
)

func newProductsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the perfume catalogue",
	}
	cmd.AddCommand(
		newProductsListCmd(c),
		newProductsSearchCmd(c),
		newProductsShowCmd(c),
		newProductsAddCmd(c),
	)
	return cmd
}

func newProductsListCmd(c *cli) *cobra.Command {
	var search, gender string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally filtered by title and gender",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if _, err := c.app.Catalog.Load(ctx); err != nil {
				return err
			}
			res, err := c.app.Catalog.FilterGender(gender)
			if err != nil {
				return err
			}
			if search != "" {
				q := res.Query
				q.Search = search
				res = c.app.Catalog.Products.Apply(q)
			}
			c.print(c.app.Renderer.Products(res))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive title search")
	cmd.Flags().StringVarP(&gender, "gender", "g", "all", "gender filter: all, him, her or unisex")
	return cmd
}

func newProductsSearchCmd(c *cli) *cobra.Command {
	var gender string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search interactively, one term per input line",
		Long: `search reads search terms from standard input, one per line, and re-renders
the product list once typing settles (SEARCH_DEBOUNCE). The pending search
is applied when input ends.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if _, err := c.app.Catalog.Load(ctx); err != nil {
				return err
			}
			res, err := c.app.Catalog.FilterGender(gender)
			if err != nil {
				return err
			}
			c.print(c.app.Renderer.Products(res))

			c.app.Catalog.Products.OnRender(func(res listing.Result[domain.Product]) {
				c.print(c.app.Renderer.Products(res))
			})
			scanner := bufio.NewScanner(c.in)
			for scanner.Scan() {
				if ctx.Err() != nil {
					break
				}
				c.app.Catalog.Search(scanner.Text())
			}
			c.app.Catalog.Products.Flush()
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read search input: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&gender, "gender", "g", "all", "gender filter: all, him, her or unisex")
	return cmd
}

func newProductsShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a product and related products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, _, err := c.app.Catalog.Detail(cmd.Context(), domain.ID(args[0]))
			if err != nil {
				return err
			}
			c.print(c.app.Renderer.ProductDetail(detail.Product, detail.Related))
			return nil
		},
	}
}

func newProductsAddCmd(c *cli) *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:   "add ID",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Catalog.AddToCart(cmd.Context(), domain.ID(args[0]), qty)
			return err
		},
	}
	cmd.Flags().IntVarP(&qty, "qty", "q", 1, "quantity to add (at most 10 per product)")
	return cmd
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Areeb006/FAJR/internal/api"
	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/listing"
)

func newAdminCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage products, users and orders",
		Long:  `admin commands require a session signed in with an admin account.`,
	}

	products := &cobra.Command{Use: "products", Short: "Manage the product catalogue"}
	products.AddCommand(
		newAdminProductsListCmd(c),
		newAdminProductSaveCmd(c, false),
		newAdminProductSaveCmd(c, true),
		newAdminProductUploadCmd(c),
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.Admin.DeleteProduct(cmd.Context(), domain.ID(args[0]))
			},
		},
	)

	users := &cobra.Command{Use: "users", Short: "Manage customer accounts"}
	users.AddCommand(
		newAdminUsersListCmd(c),
		&cobra.Command{
			Use:   "show ID",
			Short: "Show a user with addresses and orders",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				detail, _, err := c.app.Admin.NewUserModal().Open(cmd.Context(), domain.ID(args[0]))
				if err != nil {
					return err
				}
				c.print(c.app.Renderer.UserDetail(detail.User, detail.Addresses, detail.Orders))
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.Admin.DeleteUser(cmd.Context(), domain.ID(args[0]))
			},
		},
	)

	orders := &cobra.Command{Use: "orders", Short: "Manage orders"}
	orders.AddCommand(
		newAdminOrdersListCmd(c),
		&cobra.Command{
			Use:   "show ID",
			Short: "Show an order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				order, _, err := c.app.Admin.NewOrderModal().Open(cmd.Context(), domain.ID(args[0]))
				if err != nil {
					return err
				}
				c.print(c.app.Renderer.OrderDetail(order))
				return nil
			},
		},
		&cobra.Command{
			Use:   "status ID STATUS",
			Short: "Change an order's status",
			Long:  fmt.Sprintf("status sets an order's status. Valid statuses: %v.", domain.OrderStatuses),
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.Admin.UpdateOrderStatus(cmd.Context(), domain.ID(args[0]), args[1])
			},
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete an order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.Admin.DeleteOrder(cmd.Context(), domain.ID(args[0]))
			},
		},
	)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "dashboard",
			Short: "Show store statistics",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				stats, err := c.app.Admin.Stats(cmd.Context())
				if err != nil {
					return err
				}
				c.print(c.app.Renderer.Dashboard(stats))
				return nil
			},
		},
		products, users, orders,
	)
	return cmd
}

func newAdminProductsListCmd(c *cli) *cobra.Command {
	var q listing.Query
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, _, err := c.app.Admin.Products.Load(cmd.Context()); err != nil {
				return err
			}
			c.print(c.app.Renderer.Products(c.app.Admin.Products.Apply(q)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "case-insensitive title search")
	cmd.Flags().StringVarP(&q.Category, "gender", "g", "all", "gender filter")
	return cmd
}

func newAdminUsersListCmd(c *cli) *cobra.Command {
	var q listing.Query
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, _, err := c.app.Admin.Users.Load(cmd.Context()); err != nil {
				return err
			}
			c.print(c.app.Renderer.Users(c.app.Admin.Users.Apply(q)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "search by name or email")
	return cmd
}

func newAdminOrdersListCmd(c *cli) *cobra.Command {
	var q listing.Query
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, _, err := c.app.Admin.Orders.Load(cmd.Context()); err != nil {
				return err
			}
			c.print(c.app.Renderer.Orders(c.app.Admin.Orders.Apply(q)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&q.Search, "search", "s", "", "search by customer name or email")
	cmd.Flags().StringVar(&q.Category, "status", "", "only orders with this status")
	return cmd
}

// newAdminProductSaveCmd builds "create" or, when update is set, "update ID".
// On update only the flags given on the command line replace stored values.
func newAdminProductSaveCmd(c *cli, update bool) *cobra.Command {
	var (
		form      api.ProductForm
		imagePath string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Args:  cobra.NoArgs,
	}
	if update {
		cmd.Use = "update ID"
		cmd.Short = "Update a product"
		cmd.Args = cobra.ExactArgs(1)
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		editor := c.app.Admin.NewProductEditor()
		toSave := form
		if update {
			stored, err := editor.OpenEdit(ctx, domain.ID(args[0]))
			if err != nil {
				return err
			}
			toSave = overrideChanged(cmd.Flags(), stored, form)
		}

		var img *api.ImageFile
		if imagePath != "" {
			f, err := readImage(imagePath)
			if err != nil {
				return err
			}
			img = &f
		}

		id, err := editor.Save(ctx, toSave, img)
		if err != nil {
			return err
		}
		c.print("Product ID: " + id.String())
		return nil
	}

	f := cmd.Flags()
	f.StringVar(&form.Title, "title", "", "product title")
	f.StringVar(&form.Category, "category", "", "product category")
	f.StringVar(&form.Gender, "gender", "", "For Him, For Her or Unisex")
	f.Float64Var(&form.Price, "price", 0, "price in rupees")
	f.StringVar(&form.Description, "description", "", "product description")
	f.StringVar(&form.Volume, "volume", "", "bottle volume, e.g. 100ml")
	f.StringVar(&form.Longevity, "longevity", "", "how long the scent lasts")
	f.StringVar(&imagePath, "image", "", "path to a png, jpg, gif or webp image")
	return cmd
}

func overrideChanged(flags *pflag.FlagSet, stored, given api.ProductForm) api.ProductForm {
	out := stored
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("title", func() { out.Title = given.Title })
	set("category", func() { out.Category = given.Category })
	set("gender", func() { out.Gender = given.Gender })
	set("price", func() { out.Price = given.Price })
	set("description", func() { out.Description = given.Description })
	set("volume", func() { out.Volume = given.Volume })
	set("longevity", func() { out.Longevity = given.Longevity })
	return out
}

func newAdminProductUploadCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "upload ID PATH",
		Short: "Replace a product's image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := readImage(args[1])
			if err != nil {
				return err
			}
			url, err := c.app.Admin.UploadImage(cmd.Context(), domain.ID(args[0]), img)
			if err != nil {
				return err
			}
			if url != "" {
				c.print("Image: " + url)
			}
			return nil
		},
	}
}

func readImage(path string) (api.ImageFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return api.ImageFile{}, fmt.Errorf("read image: %w", err)
	}
	return api.ImageFile{Name: filepath.Base(path), Content: content}, nil
}

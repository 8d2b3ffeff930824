package main

import (
	"github.com/spf13/cobra"

	"github.com/Areeb006/FAJR/internal/app"
)

func newDevServerCmd(c *cli) *cobra.Command {
	var (
		addr string
		seed bool
	)
	cmd := &cobra.Command{
		Use:   "devserver",
		Short: "Run an in-memory demo API",
		Long: `devserver serves the storefront REST API from memory so the other commands
can be tried without a real backend. Point STOREFRONT_API_URL at it. With
--seed it starts with a small catalogue and the account ` + app.DemoEmail + `
(password ` + app.DemoPassword + `).`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{noAppAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv := app.NewDevServer(addr, c.logger)
			if seed {
				app.Seed(srv.Backend())
			}
			c.print("Serving demo API on " + addr)
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":5000", "listen address")
	cmd.Flags().BoolVar(&seed, "seed", true, "load demo products, a demo account and orders")
	return cmd
}

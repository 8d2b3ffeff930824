package main

import (
	"github.com/spf13/cobra"

	"github.com/Areeb006/FAJR/internal/storefront"
)

func newAccountCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Sign in, register and manage your profile",
	}
	cmd.AddCommand(
		newAccountLoginCmd(c),
		newAccountRegisterCmd(c),
		newAccountUpdateCmd(c),
		&cobra.Command{
			Use:   "logout",
			Short: "End the session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.Account.Logout(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show who is signed in",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				status, err := c.app.Account.Status(cmd.Context())
				if err != nil {
					return err
				}
				c.print(c.app.Renderer.AuthStatus(status))
				return nil
			},
		},
		&cobra.Command{
			Use:   "profile",
			Short: "Show your profile",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				u, err := c.app.Account.Profile(cmd.Context())
				if err != nil {
					return err
				}
				c.print(c.app.Renderer.Profile(u))
				return nil
			},
		},
	)
	return cmd
}

func newAccountLoginCmd(c *cli) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login EMAIL_OR_PHONE",
		Short: "Sign in with email or phone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Account.Login(cmd.Context(), args[0], password)
			return err
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func newAccountRegisterCmd(c *cli) *cobra.Command {
	var form storefront.Registration
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Account.Register(cmd.Context(), form)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.FirstName, "first-name", "", "first name")
	f.StringVar(&form.LastName, "last-name", "", "last name")
	f.StringVar(&form.Email, "email", "", "email address")
	f.StringVar(&form.Phone, "phone", "", "phone number")
	f.StringVar(&form.Password, "password", "", "password")
	f.StringVar(&form.ConfirmPassword, "confirm-password", "", "password again")
	return cmd
}

func newAccountUpdateCmd(c *cli) *cobra.Command {
	var changes storefront.ProfileChanges
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields or the password",
		Long: `update changes only the fields given. To change the password pass
--current-password, --new-password and --confirm-password together.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Account.UpdateProfile(cmd.Context(), changes)
		},
	}
	f := cmd.Flags()
	f.StringVar(&changes.FirstName, "first-name", "", "first name")
	f.StringVar(&changes.LastName, "last-name", "", "last name")
	f.StringVar(&changes.Phone, "phone", "", "phone number")
	f.StringVar(&changes.DateOfBirth, "date-of-birth", "", "date of birth (YYYY-MM-DD)")
	f.StringVar(&changes.Gender, "gender", "", "gender")
	f.StringVar(&changes.PreferredFragrance, "fragrance", "", "preferred fragrance family")
	f.StringVar(&changes.CurrentPassword, "current-password", "", "current password")
	f.StringVar(&changes.NewPassword, "new-password", "", "new password")
	f.StringVar(&changes.ConfirmPassword, "confirm-password", "", "new password again")
	return cmd
}

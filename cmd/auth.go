package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Password and API key management",
	}

	cmd.AddCommand(
		newAuthForgotCmd(app),
		newAuthResetCmd(app),
		newAuthChangePasswordCmd(app),
		newAuthRegenKeyCmd(app),
	)

	return cmd
}

func newAuthForgotCmd(app *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot",
		Short: "Request a password reset email",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if derr := app.client.ForgotPassword(cmd.Context(), email); derr != nil {
				return derr
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "reset instructions sent")
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthResetCmd(app *app) *cobra.Command {
	var token, password string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Complete a password reset with the emailed token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if derr := app.client.ResetPassword(cmd.Context(), token, password); derr != nil {
				return derr
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "password reset")
			return err
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Reset token from the email")
	cmd.Flags().StringVar(&password, "password", "", "New password")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAuthChangePasswordCmd(app *app) *cobra.Command {
	var current, next string

	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			if derr := app.client.ChangePassword(cmd.Context(), current, next); derr != nil {
				return derr
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "password changed")
			return err
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Current password")
	cmd.Flags().StringVar(&next, "new", "", "New password")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}

func newAuthRegenKeyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regen-key",
		Short: "Regenerate the account API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireSession(cmd.Context()); err != nil {
				return err
			}
			key, derr := app.client.RegenerateAPIKey(cmd.Context())
			if derr != nil {
				return derr
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), key)
			return err
		},
	}
}

package main

import (
	"fmt"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/spf13/cobra"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and manage your account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			profile, err := client.Profile(ctx)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to fetch profile")
			}

			fmt.Println(cli.FormatTitle("Profile"))
			fmt.Printf("  Name:  %s\n", profile.Name)
			fmt.Printf("  Email: %s\n", profile.Email)
			return nil
		},
	}

	cmd.AddCommand(updateProfileCmd())
	cmd.AddCommand(changePasswordCmd())
	cmd.AddCommand(resetDataCmd())

	return cmd
}

func updateProfileCmd() *cobra.Command {
	var (
		name     string
		currency string
		language string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if name == "" && currency == "" && language == "" {
				return fmt.Errorf("nothing to update, pass --name, --currency, or --language")
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			params := api.ProfileParams{Name: name, Currency: currency, Language: language}
			if _, err := client.UpdateProfile(ctx, params); err != nil {
				writeError(err)
				return fmt.Errorf("failed to update profile")
			}

			// Keep local display preferences in step with the backend.
			if currency != "" || language != "" {
				prefs, err := store.Preferences(ctx)
				if err == nil {
					if currency != "" {
						prefs.Currency = currency
					}
					if language != "" {
						prefs.Language = language
					}
					if err := store.SetPreferences(ctx, prefs); err != nil {
						return fmt.Errorf("failed to save preferences: %w", err)
					}
				}
			}

			fmt.Println(cli.FormatSuccess("Profile updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&currency, "currency", "", "preferred currency unit")
	cmd.Flags().StringVar(&language, "language", "", "preferred language")

	return cmd
}

func changePasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "change-password",
		Aliases: []string{"password"},
		Short:   "Change your password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			current, err := promptPassword("Current password: ")
			if err != nil {
				return err
			}
			next, err := promptPassword("New password: ")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm new password: ")
			if err != nil {
				return err
			}
			if next != confirm {
				return fmt.Errorf("passwords do not match")
			}

			if err := client.ChangePassword(ctx, current, next); err != nil {
				writeError(err)
				return fmt.Errorf("failed to change password")
			}

			fmt.Println(cli.FormatSuccess("Password changed"))
			return nil
		},
	}
}

func resetDataCmd() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset-data",
		Short: "Erase all wallets, transactions, and budgets on the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !confirmed {
				answer, err := promptLine("This erases ALL your data on the server. Type 'yes' to continue: ")
				if err != nil {
					return err
				}
				if answer != "yes" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			if err := client.ResetData(ctx); err != nil {
				writeError(err)
				return fmt.Errorf("failed to reset data")
			}

			fmt.Println(cli.FormatSuccess("All data erased"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "skip the confirmation prompt")

	return cmd
}

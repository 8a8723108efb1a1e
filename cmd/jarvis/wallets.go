package main

import (
	"fmt"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/Dat0801/jarvis-cli/internal/model"
	"github.com/spf13/cobra"
)

func walletsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallets",
		Short: "Manage wallets",
		Long:  `List, create, update, and delete the wallets that hold your balances.`,
	}

	cmd.AddCommand(listWalletsCmd())
	cmd.AddCommand(showWalletCmd())
	cmd.AddCommand(addWalletCmd())
	cmd.AddCommand(updateWalletCmd())
	cmd.AddCommand(deleteWalletCmd())
	cmd.AddCommand(walletCategoriesCmd())

	return cmd
}

func listWalletsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all wallets",
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

			wallets, err := client.ListWallets(ctx)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to list wallets")
			}

			if len(wallets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No wallets yet. Use 'jarvis wallets add' to create one."))
				return nil
			}

			rows := make([][]string, 0, len(wallets))
			for _, w := range wallets {
				rows = append(rows, []string{
					fmt.Sprintf("%d", w.ID),
					w.Name,
					cli.FormatMoney(w.Balance, w.CurrencyUnit),
					w.WalletType,
				})
			}

			fmt.Println(cli.FormatTitle(cli.WalletIcon + " Wallets"))
			fmt.Println(cli.Table([]string{"ID", "Name", "Balance", "Type"}, rows))

			currency := currencyUnit(ctx, store)
			fmt.Printf("\nTotal: %s\n", cli.FormatMoney(model.TotalBalance(wallets), currency))
			return nil
		},
	}
}

func showWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
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

			wallet, err := client.GetWallet(ctx, id)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to fetch wallet")
			}

			fmt.Println(cli.FormatTitle(cli.WalletIcon + " " + wallet.Name))
			fmt.Printf("  Balance:      %s\n", cli.FormatMoney(wallet.Balance, wallet.CurrencyUnit))
			fmt.Printf("  Type:         %s\n", wallet.WalletType)
			fmt.Printf("  Notification: %v\n", wallet.Notification)
			return nil
		},
	}
}

func addWalletCmd() *cobra.Command {
	var (
		balance    string
		currency   string
		walletType string
	)

	cmd := &cobra.Command{
		Use:     "add NAME",
		Aliases: []string{"create"},
		Short:   "Create a wallet",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(balance)
			if err != nil {
				return err
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

			wallet, err := client.CreateWallet(ctx, api.WalletParams{
				Name:         args[0],
				Balance:      &amount,
				CurrencyUnit: currency,
				WalletType:   walletType,
			})
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to create wallet")
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created wallet '%s' (ID %d)", wallet.Name, wallet.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&balance, "balance", "0", "starting balance")
	cmd.Flags().StringVar(&currency, "currency", "USD", "currency unit")
	cmd.Flags().StringVar(&walletType, "type", "basic", "wallet type (basic, linked, credit)")

	return cmd
}

func updateWalletCmd() *cobra.Command {
	var (
		name    string
		balance string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			params := api.WalletParams{Name: name}
			if balance != "" {
				amount, err := parseAmount(balance)
				if err != nil {
					return err
				}
				params.Balance = &amount
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

			if _, err := client.UpdateWallet(ctx, id, params); err != nil {
				writeError(err)
				return fmt.Errorf("failed to update wallet")
			}

			fmt.Println(cli.FormatSuccess("Wallet updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&balance, "balance", "", "new balance")

	return cmd
}

func deleteWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
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

			if err := client.DeleteWallet(ctx, id); err != nil {
				writeError(err)
				return fmt.Errorf("failed to delete wallet")
			}

			fmt.Println(cli.FormatSuccess("Wallet deleted"))
			return nil
		},
	}
}

func walletCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories ID",
		Short: "List the categories attached to a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
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

			categories, err := client.WalletCategories(ctx, id)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to list wallet categories")
			}

			for _, cat := range categories {
				fmt.Printf("%s %s (%s)\n", cat.Icon, cat.Name, cat.Type)
			}
			return nil
		},
	}
}

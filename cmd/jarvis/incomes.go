package main

import (
	"fmt"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/spf13/cobra"
)

func incomesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incomes",
		Short: "Manage incomes",
	}

	cmd.AddCommand(listIncomesCmd())
	cmd.AddCommand(showIncomeCmd())
	cmd.AddCommand(addIncomeCmd())
	cmd.AddCommand(updateIncomeCmd())
	cmd.AddCommand(deleteIncomeCmd())

	return cmd
}

func listIncomesCmd() *cobra.Command {
	var flags entryListFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List incomes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			filter, err := flags.filter()
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

			incomes, err := client.ListIncomes(ctx, filter)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to list incomes")
			}

			if len(incomes) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No incomes found."))
				return nil
			}

			currency := currencyUnit(ctx, store)
			rows := make([][]string, 0, len(incomes))
			for _, i := range incomes {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i.ID),
					i.ReceivedAt.Or(time.Now()).Format("2006-01-02"),
					i.Source,
					cli.FormatMoney(i.Amount.Abs(), currency),
					i.Note,
				})
			}

			fmt.Println(cli.Table([]string{"ID", "Date", "Source", "Amount", "Note"}, rows))
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func showIncomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one income",
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

			income, err := client.GetIncome(ctx, id)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to fetch income")
			}

			currency := currencyUnit(ctx, store)
			fmt.Println(cli.FormatTitle(income.Source))
			fmt.Printf("  Amount: %s\n", cli.FormatMoney(income.Amount.Abs(), currency))
			fmt.Printf("  Date:   %s\n", income.ReceivedAt.Or(time.Now()).Format("2006-01-02"))
			fmt.Printf("  Wallet: %d\n", income.WalletID)
			if income.Note != "" {
				fmt.Printf("  Note:   %s\n", income.Note)
			}
			return nil
		},
	}
}

func addIncomeCmd() *cobra.Command {
	var (
		walletID int64
		source   string
		note     string
		date     string
	)

	cmd := &cobra.Command{
		Use:     "add AMOUNT",
		Aliases: []string{"create"},
		Short:   "Record an income",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			receivedAt, err := parseDate(date)
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

			income, err := client.CreateIncome(ctx, api.IncomeParams{
				WalletID:   walletID,
				Amount:     &amount,
				Source:     source,
				Note:       note,
				ReceivedAt: receivedAt.Format("2006-01-02"),
			})
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to record income")
			}

			currency := currencyUnit(ctx, store)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s income (ID %d)",
				cli.FormatMoney(income.Amount.Abs(), currency), income.ID)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&walletID, "wallet", 0, "wallet to deposit into")
	cmd.Flags().StringVar(&source, "source", "", "income source")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")
	cmd.Flags().StringVar(&date, "date", "", "date received (YYYY-MM-DD, default today)")

	return cmd
}

func updateIncomeCmd() *cobra.Command {
	var (
		amount string
		source string
		note   string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			params := api.IncomeParams{Source: source, Note: note}
			if amount != "" {
				parsed, err := parseAmount(amount)
				if err != nil {
					return err
				}
				params.Amount = &parsed
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

			if _, err := client.UpdateIncome(ctx, id, params); err != nil {
				writeError(err)
				return fmt.Errorf("failed to update income")
			}

			fmt.Println(cli.FormatSuccess("Income updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&source, "source", "", "new source")
	cmd.Flags().StringVar(&note, "note", "", "new note")

	return cmd
}

func deleteIncomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an income",
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

			if err := client.DeleteIncome(ctx, id); err != nil {
				writeError(err)
				return fmt.Errorf("failed to delete income")
			}

			fmt.Println(cli.FormatSuccess("Income deleted"))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/spf13/cobra"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Manage expenses",
	}

	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(showExpenseCmd())
	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(updateExpenseCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

// entryListFlags are the shared --wallet/--from/--to filter flags on
// expense and income list commands.
type entryListFlags struct {
	walletID int64
	from     string
	to       string
}

func (f *entryListFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&f.walletID, "wallet", 0, "filter by wallet ID")
	cmd.Flags().StringVar(&f.from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "end date (YYYY-MM-DD)")
}

func (f *entryListFlags) filter() (api.EntryFilter, error) {
	filter := api.EntryFilter{WalletID: f.walletID}
	if f.from != "" {
		from, err := parseDate(f.from)
		if err != nil {
			return api.EntryFilter{}, err
		}
		filter.From = from
	}
	if f.to != "" {
		to, err := parseDate(f.to)
		if err != nil {
			return api.EntryFilter{}, err
		}
		filter.To = to
	}
	return filter, nil
}

func listExpensesCmd() *cobra.Command {
	var flags entryListFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
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

			expenses, err := client.ListExpenses(ctx, filter)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to list expenses")
			}

			if len(expenses) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses found."))
				return nil
			}

			currency := currencyUnit(ctx, store)
			rows := make([][]string, 0, len(expenses))
			for _, e := range expenses {
				rows = append(rows, []string{
					fmt.Sprintf("%d", e.ID),
					e.SpentAt.Or(time.Now()).Format("2006-01-02"),
					e.Category,
					cli.FormatMoney(e.Amount.Abs(), currency),
					e.Note,
				})
			}

			fmt.Println(cli.Table([]string{"ID", "Date", "Category", "Amount", "Note"}, rows))
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func showExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one expense",
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

			expense, err := client.GetExpense(ctx, id)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to fetch expense")
			}

			currency := currencyUnit(ctx, store)
			fmt.Println(cli.FormatTitle(expense.Category))
			fmt.Printf("  Amount: %s\n", cli.FormatMoney(expense.Amount.Abs(), currency))
			fmt.Printf("  Date:   %s\n", expense.SpentAt.Or(time.Now()).Format("2006-01-02"))
			fmt.Printf("  Wallet: %d\n", expense.WalletID)
			if expense.Note != "" {
				fmt.Printf("  Note:   %s\n", expense.Note)
			}
			return nil
		},
	}
}

func addExpenseCmd() *cobra.Command {
	var (
		walletID int64
		category string
		note     string
		date     string
	)

	cmd := &cobra.Command{
		Use:     "add AMOUNT",
		Aliases: []string{"create"},
		Short:   "Record an expense",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			spentAt, err := parseDate(date)
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

			expense, err := client.CreateExpense(ctx, api.ExpenseParams{
				WalletID: walletID,
				Amount:   &amount,
				Category: category,
				Note:     note,
				SpentAt:  spentAt.Format("2006-01-02"),
			})
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to record expense")
			}

			currency := currencyUnit(ctx, store)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s expense (ID %d)",
				cli.FormatMoney(expense.Amount.Abs(), currency), expense.ID)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&walletID, "wallet", 0, "wallet to spend from")
	cmd.Flags().StringVar(&category, "category", "", "expense category")
	cmd.Flags().StringVar(&note, "note", "", "free-text note")
	cmd.Flags().StringVar(&date, "date", "", "date spent (YYYY-MM-DD, default today)")

	return cmd
}

func updateExpenseCmd() *cobra.Command {
	var (
		amount   string
		category string
		note     string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			params := api.ExpenseParams{Category: category, Note: note}
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

			if _, err := client.UpdateExpense(ctx, id, params); err != nil {
				writeError(err)
				return fmt.Errorf("failed to update expense")
			}

			fmt.Println(cli.FormatSuccess("Expense updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&note, "note", "", "new note")

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an expense",
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

			if err := client.DeleteExpense(ctx, id); err != nil {
				writeError(err)
				return fmt.Errorf("failed to delete expense")
			}

			fmt.Println(cli.FormatSuccess("Expense deleted"))
			return nil
		},
	}
}

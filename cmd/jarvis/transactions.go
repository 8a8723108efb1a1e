package main

import (
	"fmt"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/Dat0801/jarvis-cli/internal/ledger"
	"github.com/spf13/cobra"
)

func transactionsCmd() *cobra.Command {
	var (
		period string
		bucket string
		flags  entryListFlags
	)

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Browse merged expenses and incomes by period",
		Long: `Merge expenses and incomes into one history, newest first, and show
the bucket for the chosen period. Periods are week, month, quarter, and
year; --bucket picks a specific one (for example 2026-08, 2026-W35,
2026-Q3, or 2026) and defaults to the most recent.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			p := ledger.Period(period)
			switch p {
			case ledger.PeriodWeek, ledger.PeriodMonth, ledger.PeriodQuarter, ledger.PeriodYear:
			default:
				return fmt.Errorf("invalid period %q: use week, month, quarter, or year", period)
			}

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
			incomes, err := client.ListIncomes(ctx, filter)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to list incomes")
			}

			now := time.Now()
			txns := ledger.Merge(expenses, incomes, now)
			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions found."))
				return nil
			}

			key := bucket
			if key == "" {
				key = ledger.Keys(txns, p)[0]
			}

			selected := ledger.Filter(txns, p, key)
			if len(selected) == 0 {
				fmt.Printf("No transactions in %s.\n", key)
				return nil
			}

			currency := currencyUnit(ctx, store)
			fmt.Println(cli.FormatTitle(key))
			for _, day := range ledger.GroupByDay(selected, now) {
				fmt.Println(cli.DayHeaderStyle.Render(day.Label))
				for _, txn := range day.Transactions {
					fmt.Printf("  %-24s %s\n", txn.Label, cli.FormatSignedMoney(txn.Amount, currency))
				}
			}

			totals := ledger.Sum(selected)
			fmt.Printf("\nIn %s, out %s, net %s\n",
				cli.IncomeStyle.Render(cli.FormatMoney(totals.Inflow, currency)),
				cli.ExpenseStyle.Render(cli.FormatMoney(totals.Outflow, currency)),
				cli.FormatMoney(totals.Balance, currency))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "month", "bucket period (week, month, quarter, year)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "bucket key (default: most recent)")
	flags.register(cmd)

	return cmd
}

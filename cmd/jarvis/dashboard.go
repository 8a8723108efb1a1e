package main

import (
	"fmt"
	"strings"

	"github.com/Dat0801/jarvis-cli/internal/charts"
	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/Dat0801/jarvis-cli/internal/dashboard"
	"github.com/Dat0801/jarvis-cli/internal/tui"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the budget dashboard",
		Long: `Fetch everything at once and show the dashboard: total balance, this
month's totals, recent transactions, top spending, budget progress, and
income-vs-expense sparklines. With --tui this opens the interactive
browser instead of printing once.`,
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

			currency := currencyUnit(ctx, store)

			if interactive {
				return tui.Run(ctx, client, currency)
			}

			data, err := dashboard.Load(ctx, client)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to load dashboard")
			}

			printDashboard(dashboard.Derive(data), currency)
			return nil
		},
	}

	cmd.Flags().BoolVar(&interactive, "tui", false, "open the interactive dashboard browser")

	return cmd
}

func printDashboard(view dashboard.View, currency string) {
	fmt.Println(cli.FormatTitle(cli.ChartIcon + " Jarvis Budget"))
	fmt.Printf("Total balance: %s\n", cli.FormatMoney(view.TotalBalance, currency))
	fmt.Printf("This month:    %s in, %s out, %s net\n",
		cli.IncomeStyle.Render(view.MonthTotals.Inflow.StringFixed(2)),
		cli.ExpenseStyle.Render(view.MonthTotals.Outflow.StringFixed(2)),
		view.MonthTotals.Balance.StringFixed(2))
	if view.ReminderCount > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("%d reminder(s) pending", view.ReminderCount)))
	}

	fmt.Println()
	fmt.Println(cli.TitleStyle.Render("Recent transactions"))
	for _, day := range view.RecentDays {
		fmt.Println(cli.DayHeaderStyle.Render(day.Label))
		for _, txn := range day.Transactions {
			fmt.Printf("  %-24s %s\n", txn.Label, cli.FormatSignedMoney(txn.Amount, currency))
		}
	}

	fmt.Println()
	fmt.Println(cli.TitleStyle.Render("Top spending (this month)"))
	for _, group := range view.TopSpendingMonth {
		fmt.Printf("  %-20s %10s  %s\n", group.Label,
			group.Amount.StringFixed(2), cli.FormatPercent(group.Percent))
	}

	if len(view.Budgets) > 0 {
		fmt.Println()
		fmt.Println(cli.TitleStyle.Render(cli.JarIcon + " Budgets"))
		for _, row := range view.Budgets {
			fmt.Printf("  %-16s %s %s\n", row.Budget.Label(),
				cli.ProgressBar(row.Progress.Percent, 20, row.Progress.Overspend.IsPositive()),
				cli.FormatPercent(row.Progress.Percent))
		}
	}

	fmt.Println()
	fmt.Println(cli.TitleStyle.Render("Income vs expenses " +
		cli.SubtleStyle.Render("("+strings.Join(view.MonthlySeries.Labels, " ")+")")))
	fmt.Printf("  income   %s\n", charts.Sparkline(view.MonthlySeries.Income, cli.IncomeColor))
	fmt.Printf("  expenses %s\n", charts.Sparkline(view.MonthlySeries.Expenses, cli.ExpenseColor))
}

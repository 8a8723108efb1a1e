package main

import (
	"fmt"
	"os"

	"github.com/Dat0801/jarvis-cli/internal/charts"
	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func reportsCmd() *cobra.Command {
	var svgPath string

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Show backend spending reports",
		Long: `Print the backend's aggregate reports: per-category spending, the
income-vs-expense series, and monthly summaries. With --svg FILE the
income-vs-expense chart is also written out as an SVG line chart.`,
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

			spending, err := client.SpendingStats(ctx)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to fetch spending stats")
			}

			total := decimal.Zero
			for _, row := range spending {
				total = total.Add(row.Amount)
			}

			fmt.Println(cli.FormatTitle(cli.ChartIcon + " Spending by category"))
			for _, row := range spending {
				percent := 0.0
				if total.IsPositive() {
					percent, _ = row.Amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
				}
				fmt.Printf("  %-20s %10s  %s\n", row.Category,
					row.Amount.StringFixed(2), cli.FormatPercent(percent))
			}

			summary, err := client.SummaryStats(ctx)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to fetch summary")
			}

			fmt.Println()
			fmt.Println(cli.TitleStyle.Render("Summary"))
			fmt.Printf("  Income:   %s\n", cli.FormatMoney(summary.Income, currency))
			fmt.Printf("  Expenses: %s\n", cli.FormatMoney(summary.Expenses, currency))
			fmt.Printf("  Balance:  %s\n", cli.FormatMoney(summary.Balance, currency))

			reports, err := client.MonthlyReports(ctx)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to fetch monthly reports")
			}

			if len(reports) > 0 {
				fmt.Println()
				fmt.Println(cli.TitleStyle.Render("Monthly"))
				rows := make([][]string, 0, len(reports))
				for _, r := range reports {
					rows = append(rows, []string{
						r.Month,
						cli.FormatMoney(r.Income, currency),
						cli.FormatMoney(r.Expenses, currency),
					})
				}
				fmt.Println(cli.Table([]string{"Month", "Income", "Expenses"}, rows))
			}

			if svgPath != "" {
				stats, err := client.IncomeVsExpensesStats(ctx)
				if err != nil {
					writeError(err)
					return fmt.Errorf("failed to fetch income vs expenses")
				}

				series := charts.Series{
					Labels:   stats.Months,
					Income:   stats.Income,
					Expenses: stats.Expenses,
				}
				if err := os.WriteFile(svgPath, []byte(charts.RenderSVG(series)), 0o644); err != nil {
					return fmt.Errorf("failed to write SVG: %w", err)
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Chart written to %s", svgPath)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&svgPath, "svg", "", "write the income-vs-expense chart to FILE")

	return cmd
}

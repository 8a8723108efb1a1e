package main

import (
	"fmt"
	"time"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/budget"
	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/Dat0801/jarvis-cli/internal/ledger"
	"github.com/spf13/cobra"
)

func budgetsCmd() *cobra.Command {
	return budgetResourceCmd("budgets", "Budgets", "Manage budgets",
		func(c *api.Client) *api.Budgets { return c.Budgets() })
}

func jarsCmd() *cobra.Command {
	return budgetResourceCmd("jars", "Jars", "Manage jars (the legacy name for budgets)",
		func(c *api.Client) *api.Budgets { return c.Jars() })
}

// budgetResourceCmd builds the full verb set for either path family.
// Jars and budgets are the same resource server-side, so the commands
// differ only in which routes they hit.
func budgetResourceCmd(use, title, short string, resource func(*api.Client) *api.Budgets) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.AddCommand(listBudgetsCmd(title, resource))
	cmd.AddCommand(showBudgetCmd(resource))
	cmd.AddCommand(addBudgetCmd(resource))
	cmd.AddCommand(updateBudgetCmd(resource))
	cmd.AddCommand(deleteBudgetCmd(resource))
	cmd.AddCommand(budgetTransactionsCmd(resource))
	cmd.AddCommand(addMoneyCmd(resource))

	return cmd
}

func listBudgetsCmd(title string, resource func(*api.Client) *api.Budgets) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with spending progress for the current month",
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

			budgets, err := resource(client).List(ctx)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to list budgets")
			}

			if len(budgets) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No budgets yet."))
				return nil
			}

			// Month-to-date spending feeds the progress bars.
			from, to := ledger.MonthWindow(time.Now())
			expenses, err := client.ListExpenses(ctx, api.EntryFilter{From: from, To: to})
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to list expenses")
			}

			transactions := make([]ledger.Transaction, 0, len(expenses))
			now := time.Now()
			for _, e := range expenses {
				transactions = append(transactions, ledger.FromExpense(e, now))
			}
			spent := ledger.SpentByLabel(transactions, from, to)

			currency := currencyUnit(ctx, store)
			fmt.Println(cli.FormatTitle(cli.JarIcon + " " + title))
			for _, b := range budgets {
				progress := budget.ComputeProgress(b, spent)
				fmt.Printf("%s\n  %s %s of %s  %s\n",
					cli.TitleStyle.Render(b.Label()),
					cli.ProgressBar(progress.Percent, 24, progress.State == budget.StateOverspent),
					cli.FormatMoney(progress.Spent, currency),
					cli.FormatMoney(progress.Limit, currency),
					progressStateText(progress))
			}
			return nil
		},
	}
}

func progressStateText(p budget.Progress) string {
	switch p.State {
	case budget.StateOverspent:
		return cli.ExpenseStyle.Render(fmt.Sprintf("overspent by %s", p.Overspend.StringFixed(2)))
	case budget.StateUsed:
		return cli.WarningStyle.Render("nearly used up")
	default:
		return cli.IncomeStyle.Render(fmt.Sprintf("%s left", p.Remaining.StringFixed(2)))
	}
}

func showBudgetCmd(resource func(*api.Client) *api.Budgets) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one budget",
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

			b, err := resource(client).Get(ctx, id)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to fetch budget")
			}

			currency := currencyUnit(ctx, store)
			fmt.Println(cli.FormatTitle(cli.JarIcon + " " + b.Label()))
			fmt.Printf("  Balance: %s\n", cli.FormatMoney(b.Balance, currency))
			fmt.Printf("  Target:  %s\n", cli.FormatMoney(budget.ResolveTarget(*b), currency))
			if desc := budget.StripTargetTag(b.Description); desc != "" {
				fmt.Printf("  Notes:   %s\n", desc)
			}
			return nil
		},
	}
}

func addBudgetCmd(resource func(*api.Client) *api.Budgets) *cobra.Command {
	var (
		category    string
		target      string
		description string
	)

	cmd := &cobra.Command{
		Use:     "add NAME",
		Aliases: []string{"create"},
		Short:   "Create a budget",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			params := api.BudgetParams{
				Name:        args[0],
				Category:    category,
				Description: description,
			}
			if target != "" {
				amount, err := parseAmount(target)
				if err != nil {
					return err
				}
				params.Target = &amount
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

			created, err := resource(client).Create(ctx, params)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to create budget")
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created '%s' (ID %d)", created.Label(), created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category this budget limits")
	cmd.Flags().StringVar(&target, "target", "", "target amount")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")

	return cmd
}

func updateBudgetCmd(resource func(*api.Client) *api.Budgets) *cobra.Command {
	var (
		name   string
		target string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			params := api.BudgetParams{Name: name}
			if target != "" {
				amount, err := parseAmount(target)
				if err != nil {
					return err
				}
				params.Target = &amount
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

			if _, err := resource(client).Update(ctx, id, params); err != nil {
				writeError(err)
				return fmt.Errorf("failed to update budget")
			}

			fmt.Println(cli.FormatSuccess("Budget updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&target, "target", "", "new target amount")

	return cmd
}

func deleteBudgetCmd(resource func(*api.Client) *api.Budgets) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a budget",
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

			if err := resource(client).Delete(ctx, id); err != nil {
				writeError(err)
				return fmt.Errorf("failed to delete budget")
			}

			fmt.Println(cli.FormatSuccess("Budget deleted"))
			return nil
		},
	}
}

func budgetTransactionsCmd(resource func(*api.Client) *api.Budgets) *cobra.Command {
	return &cobra.Command{
		Use:   "transactions ID",
		Short: "List movements against a budget",
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

			transactions, err := resource(client).Transactions(ctx, id)
			if err != nil {
				writeError(err)
				return fmt.Errorf("failed to list budget transactions")
			}

			currency := currencyUnit(ctx, store)
			for _, tx := range transactions {
				fmt.Printf("%s  %-8s %s  %s\n",
					tx.CreatedAt.Or(time.Now()).Format("2006-01-02"),
					tx.Kind,
					cli.FormatMoney(tx.Amount, currency),
					tx.Note)
			}
			return nil
		},
	}
}

func addMoneyCmd(resource func(*api.Client) *api.Budgets) *cobra.Command {
	return &cobra.Command{
		Use:   "add-money ID AMOUNT",
		Short: "Add money to a budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
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

			if err := resource(client).AddMoney(ctx, id, amount); err != nil {
				writeError(err)
				return fmt.Errorf("failed to add money")
			}

			fmt.Println(cli.FormatSuccess("Money added"))
			return nil
		},
	}
}

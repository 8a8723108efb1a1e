package main

import (
	"fmt"
	"os"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/Dat0801/jarvis-cli/internal/ledger"
	"github.com/Dat0801/jarvis-cli/internal/ofximport"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importOFXCmd() *cobra.Command {
	var (
		walletID int64
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "import-ofx FILE...",
		Short: "Import transactions from OFX/QFX bank exports",
		Long: `Parse OFX/QFX files and upload their transactions as expenses and
incomes. Debits become expenses and credits become incomes; duplicate
rows across the given files are dropped. With --dry-run the parsed
drafts are printed without uploading anything.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			parser := ofximport.NewParser()
			var drafts []ofximport.Draft
			for _, path := range args {
				file, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", path, err)
				}

				parsed, err := parser.ParseFile(ctx, file)
				file.Close()
				if err != nil {
					return fmt.Errorf("failed to parse %s: %w", path, err)
				}
				drafts = append(drafts, parsed...)
			}
			drafts = ofximport.Dedupe(drafts)

			if len(drafts) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions in file."))
				return nil
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			currency := currencyUnit(ctx, store)

			if dryRun {
				fmt.Println(cli.FormatTitle(fmt.Sprintf("%d transaction(s) parsed", len(drafts))))
				for _, d := range drafts {
					amount := d.Amount
					if d.Kind == ledger.KindExpense {
						amount = amount.Neg()
					}
					fmt.Printf("  %s  %-24s %s\n",
						d.Date.Format("2006-01-02"), d.Label,
						cli.FormatSignedMoney(amount, currency))
				}
				return nil
			}

			client, err := requireAuth(ctx, store)
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(len(drafts),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Uploading transactions..."),
			)

			var imported, failed int
			for _, d := range drafts {
				amount := d.Amount
				date := d.Date.Format("2006-01-02")

				switch d.Kind {
				case ledger.KindExpense:
					_, err = client.CreateExpense(ctx, api.ExpenseParams{
						WalletID: walletID,
						Amount:   &amount,
						Category: d.Label,
						Note:     d.Note,
						SpentAt:  date,
					})
				default:
					_, err = client.CreateIncome(ctx, api.IncomeParams{
						WalletID:   walletID,
						Amount:     &amount,
						Source:     d.Label,
						Note:       d.Note,
						ReceivedAt: date,
					})
				}
				if err != nil {
					failed++
				} else {
					imported++
				}
				_ = bar.Add(1)
			}
			fmt.Fprintln(os.Stderr)

			if failed > 0 {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("Imported %d, failed %d", imported, failed)))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transaction(s)", imported)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&walletID, "wallet", 0, "wallet to import into")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and print without uploading")

	return cmd
}

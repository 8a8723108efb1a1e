package tui

import (
	"fmt"
	"strings"

	"github.com/Dat0801/jarvis-cli/internal/cli"
	"github.com/charmbracelet/lipgloss"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(cli.SubtleColor)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(cli.PrimaryColor).
			Underline(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1).
			MarginRight(1)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.loading {
		return fmt.Sprintf("\n %s Loading your dashboard...\n", m.spinner.View())
	}
	if m.err != nil {
		return "\n " + cli.FormatError("Could not load the dashboard: "+m.err.Error()) +
			"\n " + cli.SubtleStyle.Render("Press r to retry, q to quit.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n " + cli.FormatTitle("Jarvis Budget") + "\n")
	b.WriteString(" " + m.headerLine() + "\n\n")
	b.WriteString(" " + m.tabsLine() + "\n\n")
	b.WriteString(m.bucketPanel())
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.topSpendingPanel(), m.budgetsPanel()))
	b.WriteString("\n " + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m Model) headerLine() string {
	balance := cli.FormatMoney(m.view.TotalBalance, m.currency)
	header := "Total balance: " + cli.IncomeStyle.Render(balance)
	if m.view.ReminderCount > 0 {
		header += cli.SubtleStyle.Render(fmt.Sprintf("   %s %d reminders", cli.NoteIcon, m.view.ReminderCount))
	}
	return header
}

func (m Model) tabsLine() string {
	tabs := make([]string, len(periods))
	for i, p := range periods {
		label := strings.ToUpper(string(p))
		if i == m.periodIdx {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

func (m Model) bucketPanel() string {
	key, txns, totals := m.activeBucket()
	if key == "" {
		return panelStyle.Render(cli.SubtleStyle.Render("No transactions yet."))
	}

	var b strings.Builder
	b.WriteString(cli.DayHeaderStyle.Render(key) + "\n")
	b.WriteString(fmt.Sprintf("in %s   out %s   net %s\n\n",
		cli.IncomeStyle.Render(cli.FormatMoney(totals.Inflow, m.currency)),
		cli.ExpenseStyle.Render(cli.FormatMoney(totals.Outflow, m.currency)),
		cli.FormatMoney(totals.Balance, m.currency)))

	shown := txns
	if len(shown) > 8 {
		shown = shown[:8]
	}
	for _, txn := range shown {
		b.WriteString(fmt.Sprintf("%-20s %s\n",
			truncate(txn.Label, 20),
			cli.FormatSignedMoney(txn.Amount, m.currency)))
	}
	if len(txns) > len(shown) {
		b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("… and %d more", len(txns)-len(shown))))
	}
	return panelStyle.Render(b.String())
}

func (m Model) topSpendingPanel() string {
	var b strings.Builder
	b.WriteString(cli.DayHeaderStyle.Render("TOP SPENDING · MONTH") + "\n")
	for _, group := range m.view.TopSpendingMonth {
		b.WriteString(fmt.Sprintf("%-16s %8s  %s\n",
			truncate(group.Label, 16),
			group.Amount.StringFixed(2),
			cli.SubtleStyle.Render(cli.FormatPercent(group.Percent))))
	}
	return panelStyle.Render(b.String())
}

func (m Model) budgetsPanel() string {
	var b strings.Builder
	b.WriteString(cli.DayHeaderStyle.Render("BUDGETS") + "\n")
	if len(m.view.Budgets) == 0 {
		b.WriteString(cli.SubtleStyle.Render("No budgets yet."))
		return panelStyle.Render(b.String())
	}
	for _, row := range m.view.Budgets {
		overspent := row.Progress.Overspend.IsPositive()
		b.WriteString(fmt.Sprintf("%-14s %s %s\n",
			truncate(row.Budget.Label(), 14),
			cli.ProgressBar(row.Progress.Percent, 14, overspent),
			cli.SubtleStyle.Render(cli.FormatPercent(row.Progress.Percent))))
	}
	return panelStyle.Render(b.String())
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}

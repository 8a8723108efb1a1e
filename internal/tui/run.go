package tui

import (
	"context"
	"fmt"

	"github.com/Dat0801/jarvis-cli/internal/api"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard browser and blocks until the user quits.
func Run(ctx context.Context, client *api.Client, currency string) error {
	program := tea.NewProgram(
		NewModel(ctx, client, currency),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard browser failed: %w", err)
	}
	return nil
}

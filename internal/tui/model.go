// Package tui is the interactive dashboard browser: one screen showing
// wallet totals, period-scoped transactions, top spending, and budget
// progress, refreshed on demand from the backend.
package tui

import (
	"context"

	"github.com/Dat0801/jarvis-cli/internal/api"
	"github.com/Dat0801/jarvis-cli/internal/dashboard"
	"github.com/Dat0801/jarvis-cli/internal/ledger"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var periods = []ledger.Period{
	ledger.PeriodWeek,
	ledger.PeriodMonth,
	ledger.PeriodQuarter,
	ledger.PeriodYear,
}

// Model is the bubbletea model for the dashboard browser.
type Model struct {
	ctx      context.Context
	client   *api.Client
	currency string

	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	data *dashboard.Data
	view dashboard.View
	err  error

	// generation counts refreshes; responses tagged with an older
	// generation are dropped.
	generation int
	loading    bool

	periodIdx int
	bucketIdx int
	width     int
	height    int
}

// NewModel creates the dashboard browser model.
func NewModel(ctx context.Context, client *api.Client, currency string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		client:    client,
		currency:  currency,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   s,
		periodIdx: 1, // month
		loading:   true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadSnapshot(m.generation))
}

// loadSnapshot fetches a fresh snapshot tagged with the generation that
// requested it.
func (m Model) loadSnapshot(generation int) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		data, err := dashboard.Load(ctx, client)
		if err != nil {
			return snapshotFailedMsg{generation: generation, err: err}
		}
		return snapshotLoadedMsg{generation: generation, data: data}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case snapshotLoadedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.data = msg.data
		m.view = dashboard.Derive(msg.data)
		m.bucketIdx = 0
		return m, nil

	case snapshotFailedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.loading = false
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		m.generation++
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.loadSnapshot(m.generation))

	case key.Matches(msg, m.keys.PrevTab):
		if m.periodIdx > 0 {
			m.periodIdx--
			m.bucketIdx = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		if m.periodIdx < len(periods)-1 {
			m.periodIdx++
			m.bucketIdx = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevBucket):
		if m.bucketIdx > 0 {
			m.bucketIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.NextBucket):
		if m.bucketIdx < len(m.bucketKeys())-1 {
			m.bucketIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// period is the active time-bucket granularity.
func (m Model) period() ledger.Period {
	return periods[m.periodIdx]
}

// bucketKeys lists the bucket keys available for the active period.
func (m Model) bucketKeys() []string {
	if m.data == nil {
		return nil
	}
	return ledger.Keys(m.data.Transactions(), m.period())
}

// activeBucket returns the selected bucket's key, transactions, and
// totals.
func (m Model) activeBucket() (string, []ledger.Transaction, ledger.Totals) {
	keys := m.bucketKeys()
	if len(keys) == 0 {
		return "", nil, ledger.Totals{}
	}
	idx := m.bucketIdx
	if idx >= len(keys) {
		idx = len(keys) - 1
	}
	txns := ledger.Filter(m.data.Transactions(), m.period(), keys[idx])
	return keys[idx], txns, ledger.Sum(txns)
}

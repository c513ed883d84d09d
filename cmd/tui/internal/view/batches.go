package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/roastery/internal/inventory"
)

type BatchesModel struct {
	CommonModel
	invService *inventory.Service

	table   table.Model
	loading bool
	err     error
}

func NewBatchesModel(invSvc *inventory.Service) BatchesModel {
	columns := []table.Column{
		{Title: "Batch", Width: 8},
		{Title: "Received", Width: 12},
		{Title: "Farmer", Width: 8},
		{Title: "Bean Type", Width: 14},
		{Title: "Weight", Width: 12},
		{Title: "Status", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return BatchesModel{invService: invSvc, table: t, loading: true}
}

func (m BatchesModel) Title() string { return "Bean Inventory" }

func (m BatchesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m BatchesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case batchesMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			rows := make([]table.Row, len(msg.batches))
			for i, b := range msg.batches {
				rows[i] = table.Row{b.ID, b.ReceivedDate, b.FarmerID, b.BeanType, FormatWeight(b.WeightKg), string(b.Status)}
			}

			m.table.SetRows(rows)
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m BatchesModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.loading {
		return style.Render("Loading inventory...")
	}

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(Esc to go back)",
		)
	}

	return style.Render(m.table.View() + "\n\n(Esc to go back | r to refresh)")
}

type batchesMsg struct {
	batches []*inventory.Batch
	err     error
}

func (m BatchesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		batches, err := m.invService.List(ctx)

		return batchesMsg{batches: batches, err: err}
	}
}

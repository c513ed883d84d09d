package view

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/roastery/internal/inventory"
	"github.com/MrJamesThe3rd/roastery/internal/report"
)

type SummaryModel struct {
	CommonModel
	reports *report.Service

	summary *report.Summary
	loading bool
	err     error
}

func NewSummaryModel(reports *report.Service) SummaryModel {
	return SummaryModel{reports: reports, loading: true}
}

func (m SummaryModel) Title() string { return "Inventory Summary" }

func (m SummaryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryMsg:
		m.loading = false
		m.summary = msg.summary
		m.err = msg.err

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

	return m, nil
}

func (m SummaryModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.loading {
		return style.Render("Loading inventory summary...")
	}

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(Esc to go back)",
		)
	}

	s := m.summary

	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("=== INVENTORY SUMMARY ===") + "\n\n")
	sb.WriteString(fmt.Sprintf("Total Batches: %d\n", s.TotalBatches))
	sb.WriteString(fmt.Sprintf("Total Weight:  %s\n", FormatWeight(s.TotalWeightKg)))

	if s.TotalBatches == 0 {
		sb.WriteString("\nNo inventory data available.\n")
		return style.Render(sb.String() + "\n(Esc to go back | r to refresh)")
	}

	sb.WriteString("\nBy Bean Type:\n")

	for _, beanType := range sortedKeys(s.ByBeanType) {
		g := s.ByBeanType[beanType]
		sb.WriteString(fmt.Sprintf("  %-12s %d batches, %s (%.1f%%)\n",
			beanType, g.Batches, FormatWeight(g.WeightKg), g.WeightKg/s.TotalWeightKg*100))
	}

	sb.WriteString("\nBy Processing Stage:\n")

	statuses := make([]string, 0, len(s.ByStatus))
	for status := range s.ByStatus {
		statuses = append(statuses, string(status))
	}

	sort.Strings(statuses)

	for _, status := range statuses {
		g := s.ByStatus[inventory.Status(status)]
		sb.WriteString(fmt.Sprintf("  %-12s %d batches, %s (%.1f%%)\n",
			status, g.Batches, FormatWeight(g.WeightKg), g.WeightKg/s.TotalWeightKg*100))
	}

	return style.Render(sb.String() + "\n(Esc to go back | r to refresh)")
}

type summaryMsg struct {
	summary *report.Summary
	err     error
}

func (m SummaryModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		summary, err := m.reports.Summary(ctx)

		return summaryMsg{summary: summary, err: err}
	}
}

func sortedKeys(groups map[string]report.Group) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

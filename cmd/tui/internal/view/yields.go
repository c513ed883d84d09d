package view

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/roastery/internal/processing"
	"github.com/MrJamesThe3rd/roastery/internal/report"
)

type YieldsModel struct {
	CommonModel
	reports *report.Service

	yields  []report.BatchYield
	stages  map[processing.ProcessType]report.StageStats
	loading bool
	err     error
}

func NewYieldsModel(reports *report.Service) YieldsModel {
	return YieldsModel{reports: reports, loading: true}
}

func (m YieldsModel) Title() string { return "Processing Yields" }

func (m YieldsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m YieldsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case yieldsMsg:
		m.loading = false
		m.yields = msg.yields
		m.stages = msg.stages
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

func (m YieldsModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.loading {
		return style.Render("Calculating yields...")
	}

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(Esc to go back)",
		)
	}

	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("=== PROCESSING YIELDS ===") + "\n\n")

	if len(m.yields) == 0 {
		sb.WriteString("No completed processing stages yet.\n")
	}

	for _, y := range m.yields {
		sb.WriteString(fmt.Sprintf("%-6s %-10s %s -> %s  yield %s\n",
			y.BatchID, y.LastStage, FormatWeight(y.InitialKg), FormatWeight(y.FinalKg), FormatPct(y.YieldPct)))
	}

	if len(m.stages) > 0 {
		sb.WriteString("\nAverage by process type:\n")

		types := make([]string, 0, len(m.stages))
		for pt := range m.stages {
			types = append(types, string(pt))
		}

		sort.Strings(types)

		for _, pt := range types {
			stats := m.stages[processing.ProcessType(pt)]
			sb.WriteString(fmt.Sprintf("  %-10s %s over %d record(s)\n", pt, FormatPct(stats.AverageYieldPct), stats.Records))
		}
	}

	return style.Render(sb.String() + "\n(Esc to go back | r to refresh)")
}

type yieldsMsg struct {
	yields []report.BatchYield
	stages map[processing.ProcessType]report.StageStats
	err    error
}

func (m YieldsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		yields, err := m.reports.BatchYields(ctx)
		if err != nil {
			return yieldsMsg{err: err}
		}

		stages, err := m.reports.StageAverages(ctx)
		if err != nil {
			return yieldsMsg{err: err}
		}

		return yieldsMsg{yields: yields, stages: stages}
	}
}

package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/roastery/internal/oplog"
)

const recentLogCount = 10

type LogsModel struct {
	CommonModel
	ops *oplog.Logger

	entries []oplog.Entry
	loading bool
	err     error
}

func NewLogsModel(ops *oplog.Logger) LogsModel {
	return LogsModel{ops: ops, loading: true}
}

func (m LogsModel) Title() string { return "Recent Operations" }

func (m LogsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LogsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case logsMsg:
		m.loading = false
		m.entries = msg.entries
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

func (m LogsModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.loading {
		return style.Render("Loading operations log...")
	}

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(Esc to go back)",
		)
	}

	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("=== RECENT OPERATIONS ===") + "\n\n")

	if len(m.entries) == 0 {
		sb.WriteString("No log entries found.\n")
	}

	for _, e := range m.entries {
		sb.WriteString(fmt.Sprintf("%s - %s - %s\n", e.Timestamp, e.Operation, e.Details))
	}

	return style.Render(sb.String() + "\n(Esc to go back | r to refresh)")
}

type logsMsg struct {
	entries []oplog.Entry
	err     error
}

func (m LogsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.ops.Recent(recentLogCount)
		return logsMsg{entries: entries, err: err}
	}
}

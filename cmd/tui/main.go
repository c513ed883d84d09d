package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/roastery/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/roastery/internal/config"
	"github.com/MrJamesThe3rd/roastery/internal/inventory"
	invstore "github.com/MrJamesThe3rd/roastery/internal/inventory/store"
	"github.com/MrJamesThe3rd/roastery/internal/oplog"
	"github.com/MrJamesThe3rd/roastery/internal/processing"
	procstore "github.com/MrJamesThe3rd/roastery/internal/processing/store"
	"github.com/MrJamesThe3rd/roastery/internal/report"
)

type model struct {
	invService  *inventory.Service
	procService *processing.Service
	reports     *report.Service
	ops         *oplog.Logger

	currentView View

	summaryView  view.SummaryModel
	batchesView  view.BatchesModel
	addBatchView view.AddBatchModel
	stageView    view.StageModel
	yieldsView   view.YieldsModel
	logsView     view.LogsModel
}

type View int

const (
	ViewMenu     View = 0
	ViewSummary  View = 1
	ViewBatches  View = 2
	ViewAddBatch View = 3
	ViewStage    View = 4
	ViewYields   View = 5
	ViewLogs     View = 6
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ops := oplog.New(cfg.OperationsLogPath())
	invSvc := inventory.NewService(invstore.New(cfg.InventoryPath()), ops)
	procSvc := processing.NewService(procstore.New(cfg.ProcessingPath()), ops)
	reports := report.NewService(invSvc, procSvc)

	return model{
		invService:  invSvc,
		procService: procSvc,
		reports:     reports,
		ops:         ops,
		currentView: ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewSummary
				m.summaryView = view.NewSummaryModel(m.reports)

				return m, m.summaryView.Init()
			case "2":
				m.currentView = ViewBatches
				m.batchesView = view.NewBatchesModel(m.invService)

				return m, m.batchesView.Init()
			case "3":
				m.currentView = ViewAddBatch
				m.addBatchView = view.NewAddBatchModel(m.invService)

				return m, m.addBatchView.Init()
			case "4":
				m.currentView = ViewStage
				m.stageView = view.NewStageModel(m.invService, m.procService)

				return m, m.stageView.Init()
			case "5":
				m.currentView = ViewYields
				m.yieldsView = view.NewYieldsModel(m.reports)

				return m, m.yieldsView.Init()
			case "6":
				m.currentView = ViewLogs
				m.logsView = view.NewLogsModel(m.ops)

				return m, m.logsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewSummary:
		var newModel tea.Model
		newModel, cmd = m.summaryView.Update(msg)
		m.summaryView = newModel.(view.SummaryModel)
	case ViewBatches:
		var newModel tea.Model
		newModel, cmd = m.batchesView.Update(msg)
		m.batchesView = newModel.(view.BatchesModel)
	case ViewAddBatch:
		var newModel tea.Model
		newModel, cmd = m.addBatchView.Update(msg)
		m.addBatchView = newModel.(view.AddBatchModel)
	case ViewStage:
		var newModel tea.Model
		newModel, cmd = m.stageView.Update(msg)
		m.stageView = newModel.(view.StageModel)
	case ViewYields:
		var newModel tea.Model
		newModel, cmd = m.yieldsView.Update(msg)
		m.yieldsView = newModel.(view.YieldsModel)
	case ViewLogs:
		var newModel tea.Model
		newModel, cmd = m.logsView.Update(msg)
		m.logsView = newModel.(view.LogsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Coffee Processing Plant\n\n" +
				"1. Inventory Summary\n" +
				"2. Browse Inventory\n" +
				"3. Add Bean Batch\n" +
				"4. Record Processing Stage\n" +
				"5. Processing Yields\n" +
				"6. Recent Operations\n\n" +
				"q. Quit",
		)
	case ViewSummary:
		return m.summaryView.View()
	case ViewBatches:
		return m.batchesView.View()
	case ViewAddBatch:
		return m.addBatchView.View()
	case ViewStage:
		return m.stageView.View()
	case ViewYields:
		return m.yieldsView.View()
	case ViewLogs:
		return m.logsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}

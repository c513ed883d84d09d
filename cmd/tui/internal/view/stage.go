package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/roastery/internal/inventory"
	"github.com/MrJamesThe3rd/roastery/internal/processing"
)

type stageState int

const (
	stageStateForm stageState = iota
	stageStateSaving
	stageStateResult
)

type StageModel struct {
	CommonModel
	invService  *inventory.Service
	procService *processing.Service

	state  stageState
	form   *huh.Form
	status string
	err    error
}

func NewStageModel(invSvc *inventory.Service, procSvc *processing.Service) StageModel {
	return StageModel{
		invService:  invSvc,
		procService: procSvc,
		form:        buildStageForm(),
	}
}

func (m StageModel) Title() string { return "Record Processing Stage" }

func (m StageModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m StageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		if m.state == stageStateResult {
			m.state = stageStateForm
			m.err = nil
			m.status = ""
			m.form = buildStageForm()

			return m, m.form.Init()
		}

		return m, Back
	}

	switch m.state {
	case stageStateForm:
		return m.updateForm(msg)

	case stageStateSaving:
		if result, ok := msg.(stageResultMsg); ok {
			m.state = stageStateResult
			m.err = result.err
			m.status = result.status
		}

		return m, nil
	}

	return m, nil
}

func (m StageModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(m.form.GetString("weight_after")), 64)
	if err != nil {
		m.state = stageStateResult
		m.err = err
		m.status = fmt.Sprintf("Error: %v", err)

		return m, nil
	}

	params := processing.CreateParams{
		BatchID:       strings.TrimSpace(m.form.GetString("batch_id")),
		Type:          processing.ProcessType(m.form.GetString("process_type")),
		StartDate:     strings.TrimSpace(m.form.GetString("start_date")),
		EndDate:       strings.TrimSpace(m.form.GetString("end_date")),
		WeightAfterKg: weight,
	}

	m.state = stageStateSaving

	return m, m.recordCmd(params)
}

func (m StageModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case stageStateForm:
		return style.Render(m.form.View())

	case stageStateSaving:
		return style.Render("Recording stage...")

	case stageStateResult:
		color := "46"
		if m.err != nil {
			color = "196"
		}

		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	return ""
}

type stageResultMsg struct {
	status string
	err    error
}

// recordCmd appends the stage and then advances the batch status to the
// process type. The batch link is advisory, so a stage for an unknown batch
// is still recorded; only the status update is skipped.
func (m StageModel) recordCmd(params processing.CreateParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		record, err := m.procService.Record(ctx, params)
		if err != nil {
			return stageResultMsg{status: fmt.Sprintf("Error: %v", err), err: err}
		}

		status := fmt.Sprintf("Recorded %s for batch %s.", record.Type, record.BatchID)

		err = m.invService.UpdateStatus(ctx, record.BatchID, inventory.Status(record.Type))
		if errors.Is(err, inventory.ErrNotFound) {
			status += fmt.Sprintf(" Batch %s is not in the inventory; status not updated.", record.BatchID)
		} else if err != nil {
			return stageResultMsg{status: fmt.Sprintf("Stage recorded, but status update failed: %v", err), err: err}
		}

		return stageResultMsg{status: status}
	}
}

func buildStageForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("batch_id").
				Title("Batch ID").
				Placeholder("B001").
				Validate(required("batch id")),
			huh.NewSelect[string]().
				Key("process_type").
				Title("Process Type").
				Options(
					huh.NewOption("Washing", string(processing.TypeWashing)),
					huh.NewOption("Drying", string(processing.TypeDrying)),
					huh.NewOption("Roasting", string(processing.TypeRoasting)),
				),
			huh.NewInput().
				Key("start_date").
				Title("Start Date").
				Placeholder("YYYY-MM-DD").
				Validate(validDate(false)),
			huh.NewInput().
				Key("end_date").
				Title("End Date (blank if in progress)").
				Placeholder("YYYY-MM-DD").
				Validate(validDate(true)),
			huh.NewInput().
				Key("weight_after").
				Title("Weight After (kg)").
				Placeholder("245").
				Validate(validWeight),
		),
	).WithWidth(50).WithShowHelp(false)
}

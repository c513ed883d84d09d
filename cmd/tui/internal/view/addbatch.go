package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/roastery/internal/inventory"
)

type addBatchState int

const (
	addBatchStateForm addBatchState = iota
	addBatchStateSaving
	addBatchStateResult
)

type AddBatchModel struct {
	CommonModel
	invService *inventory.Service

	state  addBatchState
	form   *huh.Form
	status string
	err    error
}

func NewAddBatchModel(invSvc *inventory.Service) AddBatchModel {
	return AddBatchModel{
		invService: invSvc,
		form:       buildAddBatchForm(),
	}
}

func (m AddBatchModel) Title() string { return "Add Bean Batch" }

func (m AddBatchModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AddBatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		if m.state == addBatchStateResult {
			m.state = addBatchStateForm
			m.err = nil
			m.status = ""
			m.form = buildAddBatchForm()

			return m, m.form.Init()
		}

		return m, Back
	}

	switch m.state {
	case addBatchStateForm:
		return m.updateForm(msg)

	case addBatchStateSaving:
		if result, ok := msg.(addBatchResultMsg); ok {
			m.state = addBatchStateResult
			m.err = result.err

			if result.err != nil {
				m.status = fmt.Sprintf("Error: %v", result.err)
			} else {
				m.status = fmt.Sprintf("Batch %s added.", result.batch.ID)
			}
		}

		return m, nil
	}

	return m, nil
}

func (m AddBatchModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(m.form.GetString("weight")), 64)
	if err != nil {
		m.state = addBatchStateResult
		m.err = err
		m.status = fmt.Sprintf("Error: %v", err)

		return m, nil
	}

	params := inventory.CreateParams{
		ID:           strings.TrimSpace(m.form.GetString("id")),
		ReceivedDate: strings.TrimSpace(m.form.GetString("date")),
		FarmerID:     strings.TrimSpace(m.form.GetString("farmer")),
		BeanType:     strings.TrimSpace(m.form.GetString("bean_type")),
		WeightKg:     weight,
		Status:       inventory.StatusReceived,
	}

	m.state = addBatchStateSaving

	return m, m.addCmd(params)
}

func (m AddBatchModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case addBatchStateForm:
		return style.Render(m.form.View())

	case addBatchStateSaving:
		return style.Render("Saving batch...")

	case addBatchStateResult:
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

type addBatchResultMsg struct {
	batch *inventory.Batch
	err   error
}

func (m AddBatchModel) addCmd(params inventory.CreateParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		batch, err := m.invService.Add(ctx, params)

		return addBatchResultMsg{batch: batch, err: err}
	}
}

func buildAddBatchForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("id").
				Title("Batch ID").
				Placeholder("B004").
				Validate(required("batch id")),
			huh.NewInput().
				Key("date").
				Title("Received Date").
				Placeholder("YYYY-MM-DD").
				Validate(validDate(false)),
			huh.NewInput().
				Key("farmer").
				Title("Farmer ID").
				Placeholder("F042").
				Validate(required("farmer id")),
			huh.NewInput().
				Key("bean_type").
				Title("Bean Type").
				Placeholder("Arabica").
				Validate(required("bean type")),
			huh.NewInput().
				Key("weight").
				Title("Weight (kg)").
				Placeholder("250").
				Validate(validWeight),
		),
	).WithWidth(50).WithShowHelp(false)
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}

		return nil
	}
}

// validDate checks YYYY-MM-DD input; optional fields accept blank.
func validDate(optional bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if optional {
				return nil
			}

			return errors.New("date is required")
		}

		if _, err := time.Parse(time.DateOnly, s); err != nil {
			return errors.New("expected YYYY-MM-DD")
		}

		return nil
	}
}

func validWeight(s string) error {
	weight, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("weight must be a number")
	}

	if weight < 0 {
		return errors.New("weight must not be negative")
	}

	return nil
}

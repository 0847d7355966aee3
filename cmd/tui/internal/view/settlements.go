package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
	"github.com/MrJamesThe3rd/verhuizer/internal/project"
)

type SettlementsModel struct {
	CommonModel
	costService    *cost.Service
	projectService *project.Service
	projectID      uuid.UUID

	settlements []cost.Settlement
	names       map[uuid.UUID]string
	totalCents  int64
	loading     bool
	err         error
}

func NewSettlementsModel(costSvc *cost.Service, projectSvc *project.Service, projectID uuid.UUID) SettlementsModel {
	return SettlementsModel{
		costService:    costSvc,
		projectService: projectSvc,
		projectID:      projectID,
		loading:        true,
	}
}

func (m SettlementsModel) Title() string     { return "Verrekening" }
func (m SettlementsModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m SettlementsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m SettlementsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSettlementsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.settlements = msg.settlements
		m.names = msg.names
		m.totalCents = msg.totalCents
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

func (m SettlementsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Verrekening berekenen...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Totaal uitgegeven: %s\n\n", FormatAmount(m.totalCents))

	if len(m.settlements) == 0 {
		b.WriteString("Iedereen staat quitte.")
	} else {
		arrow := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render("→")

		for _, s := range m.settlements {
			fmt.Fprintf(&b, "%s %s %s: %s\n",
				m.names[s.FromID],
				arrow,
				m.names[s.ToID],
				FormatAmount(s.AmountCents),
			)
		}
	}

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(b.String())

	return lipgloss.NewStyle().Padding(1).Render(panel)
}

type loadSettlementsMsg struct {
	settlements []cost.Settlement
	names       map[uuid.UUID]string
	totalCents  int64
	err         error
}

func (m SettlementsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		people, err := m.projectService.People(ctx, m.projectID)
		if err != nil {
			return loadSettlementsMsg{err: err}
		}

		personIDs := make([]uuid.UUID, len(people))
		names := make(map[uuid.UUID]string, len(people))

		for i, p := range people {
			personIDs[i] = p.ID
			names[p.ID] = p.Name
		}

		settlements, err := m.costService.Settlements(ctx, m.projectID, personIDs)
		if err != nil {
			return loadSettlementsMsg{err: err}
		}

		expenses, err := m.costService.List(ctx, cost.ListFilter{ProjectID: &m.projectID})
		if err != nil {
			return loadSettlementsMsg{err: err}
		}

		var totalCents int64
		for _, e := range expenses {
			totalCents += e.AmountCents
		}

		return loadSettlementsMsg{
			settlements: settlements,
			names:       names,
			totalCents:  totalCents,
		}
	}
}

package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/project"
)

// ProjectSelectedMsg is emitted when the user picks a project to work
// in.
type ProjectSelectedMsg struct {
	ID   uuid.UUID
	Name string
}

type ProjectsModel struct {
	CommonModel
	projectService *project.Service

	table    table.Model
	projects []*project.Project
	loading  bool
	err      error
}

func NewProjectsModel(projectSvc *project.Service) ProjectsModel {
	columns := []table.Column{
		{Title: "Naam", Width: 25},
		{Title: "Verhuisdatum", Width: 14},
		{Title: "Dagen", Width: 8},
		{Title: "Nieuw adres", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
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

	return ProjectsModel{
		projectService: projectSvc,
		table:          t,
		loading:        true,
	}
}

func (m ProjectsModel) Title() string     { return "Projecten" }
func (m ProjectsModel) ShortHelp() string { return "Enter: kies project | r: refresh | q: quit" }

func (m ProjectsModel) Init() tea.Cmd {
	return m.loadProjectsCmd()
}

func (m ProjectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadProjectsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.projects = msg.projects
		m.refreshTable()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadProjectsCmd()
		case "enter":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.projects) {
				return m, nil
			}

			p := m.projects[idx]

			return m, func() tea.Msg {
				return ProjectSelectedMsg{ID: p.ID, Name: p.Name}
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ProjectsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Projecten laden...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if len(m.projects) == 0 {
		return lipgloss.NewStyle().Padding(2).Render("Geen projecten gevonden.")
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(tableView)
}

func (m *ProjectsModel) refreshTable() {
	now := time.Now()

	rows := make([]table.Row, 0, len(m.projects))
	for _, p := range m.projects {
		rows = append(rows, table.Row{
			p.Name,
			FormatDate(p.MovingDate),
			fmt.Sprintf("%d", p.DaysUntilMove(now)),
			project.FormatAddress(p.NewAddress),
		})
	}
	m.table.SetRows(rows)
}

type loadProjectsMsg struct {
	projects []*project.Project
	err      error
}

func (m ProjectsModel) loadProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		projects, err := m.projectService.List(ctx)
		return loadProjectsMsg{projects: projects, err: err}
	}
}

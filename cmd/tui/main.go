package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/verhuizer/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/verhuizer/internal/config"
	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
	costStore "github.com/MrJamesThe3rd/verhuizer/internal/cost/store"
	"github.com/MrJamesThe3rd/verhuizer/internal/database"
	"github.com/MrJamesThe3rd/verhuizer/internal/export"
	"github.com/MrJamesThe3rd/verhuizer/internal/project"
	projectStore "github.com/MrJamesThe3rd/verhuizer/internal/project/store"
	"github.com/MrJamesThe3rd/verhuizer/internal/shopping"
	shoppingStore "github.com/MrJamesThe3rd/verhuizer/internal/shopping/store"
	"github.com/MrJamesThe3rd/verhuizer/internal/task"
	taskStore "github.com/MrJamesThe3rd/verhuizer/internal/task/store"
)

type model struct {
	projectService  *project.Service
	taskService     *task.Service
	costService     *cost.Service
	shoppingService *shopping.Service
	exportService   *export.Service

	currentView View

	projectID   uuid.UUID
	projectName string

	projectsView    view.ProjectsModel
	tasksView       view.TasksModel
	settlementsView view.SettlementsModel
	boardView       view.BoardModel
	exportView      view.ExportModel
}

type View int

const (
	ViewProjects    View = 0
	ViewMenu        View = 1
	ViewTasks       View = 2
	ViewSettlements View = 3
	ViewBoard       View = 4
	ViewExport      View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	projectSvc := project.NewService(projectStore.New(db), project.NewPostcodeClient(cfg.Postcode.APIKey))
	taskSvc := task.NewService(taskStore.New(db))
	costSvc := cost.NewService(costStore.New(db))
	shoppingSvc := shopping.NewService(shoppingStore.New(db))
	exportSvc := export.NewService(projectSvc, taskSvc, costSvc)

	return model{
		projectService:  projectSvc,
		taskService:     taskSvc,
		costService:     costSvc,
		shoppingService: shoppingSvc,
		exportService:   exportSvc,
		currentView:     ViewProjects,
		projectsView:    view.NewProjectsModel(projectSvc),
	}
}

func (m model) Init() tea.Cmd {
	return m.projectsView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewProjects {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "p":
				m.currentView = ViewProjects
				m.projectsView = view.NewProjectsModel(m.projectService)

				return m, m.projectsView.Init()
			case "1":
				m.currentView = ViewTasks
				m.tasksView = view.NewTasksModel(m.taskService, m.projectID)

				return m, m.tasksView.Init()
			case "2":
				m.currentView = ViewSettlements
				m.settlementsView = view.NewSettlementsModel(m.costService, m.projectService, m.projectID)

				return m, m.settlementsView.Init()
			case "3":
				m.currentView = ViewBoard
				m.boardView = view.NewBoardModel(m.shoppingService, m.projectID)

				return m, m.boardView.Init()
			case "4":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService, m.projectID)

				return m, m.exportView.Init()
			}
		}
	case view.ProjectSelectedMsg:
		m.projectID = msg.ID
		m.projectName = msg.Name
		m.currentView = ViewMenu

		return m, nil
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewProjects:
		var newModel tea.Model
		newModel, cmd = m.projectsView.Update(msg)
		m.projectsView = newModel.(view.ProjectsModel)
	case ViewTasks:
		var newModel tea.Model
		newModel, cmd = m.tasksView.Update(msg)
		m.tasksView = newModel.(view.TasksModel)
	case ViewSettlements:
		var newModel tea.Model
		newModel, cmd = m.settlementsView.Update(msg)
		m.settlementsView = newModel.(view.SettlementsModel)
	case ViewBoard:
		var newModel tea.Model
		newModel, cmd = m.boardView.Update(msg)
		m.boardView = newModel.(view.BoardModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewProjects:
		return m.projectsView.View()
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Verhuizer TUI | %s\n\n", m.projectName) +
				"1. Taken\n" +
				"2. Verrekening\n" +
				"3. Marktplaats Bord\n" +
				"4. Export\n\n" +
				"p. Ander project\n" +
				"q. Quit",
		)
	case ViewTasks:
		return m.tasksView.View()
	case ViewSettlements:
		return m.settlementsView.View()
	case ViewBoard:
		return m.boardView.View()
	case ViewExport:
		return m.exportView.View()
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

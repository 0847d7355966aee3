package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/task"
)

type tasksState int

const (
	tasksStateBrowse tasksState = iota
	tasksStateAdd
)

type TasksModel struct {
	CommonModel
	taskService *task.Service
	projectID   uuid.UUID

	state tasksState
	table table.Model
	// all holds every task of the project; tasks is the filtered view.
	all   []*task.Task
	tasks []*task.Task
	form  *huh.Form

	// Filter cycling
	categoryFilterIdx int
	statusFilterIdx   int

	filter  task.TaskFilter
	loading bool
	err     error
	status  string

	// Form bindings
	formTitle    string
	formCategory string
	formDeadline string
}

func NewTasksModel(taskSvc *task.Service, projectID uuid.UUID) TasksModel {
	columns := []table.Column{
		{Title: "Deadline", Width: 12},
		{Title: "Status", Width: 12},
		{Title: "Categorie", Width: 14},
		{Title: "Titel", Width: 45},
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

	return TasksModel{
		taskService: taskSvc,
		projectID:   projectID,
		table:       t,
	}
}

func (m TasksModel) Title() string { return "Taken" }
func (m TasksModel) ShortHelp() string {
	if m.state == tasksStateAdd {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | enter: toggle done | a: add | c: category filter | s: status filter | r: refresh"
}

func (m TasksModel) Init() tea.Cmd {
	return m.loadTasksCmd()
}

func (m TasksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTasksMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.all = msg.tasks
		m.tasks = task.Filter(m.all, m.filter)
		m.status = ""
		m.refreshTable()
		return m, nil

	case taskSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		}
		m.state = tasksStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadTasksCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case tasksStateBrowse:
		return m.updateBrowse(msg)
	case tasksStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m TasksModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTasksCmd()
		case "a":
			return m.enterAddMode()
		case "enter":
			return m, m.toggleDoneCmd()
		case "c":
			m.categoryFilterIdx = (m.categoryFilterIdx + 1) % (len(task.Categories) + 1)
			m.applyFilter()
			return m, nil
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % 4
			m.applyFilter()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TasksModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formTitle = ""
	m.formCategory = string(task.CategoryOverig)
	m.formDeadline = ""

	categoryOptions := make([]huh.Option[string], len(task.Categories))
	for i, c := range task.Categories {
		categoryOptions[i] = huh.NewOption(string(c), string(c))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Titel").
				Value(&m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("titel mag niet leeg zijn")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("category").
				Title("Categorie").
				Options(categoryOptions...).
				Value(&m.formCategory),

			huh.NewInput().
				Key("deadline").
				Title("Deadline").
				Placeholder("2025-08-18").
				Value(&m.formDeadline).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("gebruik JJJJ-MM-DD")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = tasksStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m TasksModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = tasksStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.addCmd()
}

func (m TasksModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Taken laden...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	categoryLabel := "Alle"
	if m.categoryFilterIdx > 0 {
		categoryLabel = string(task.Categories[m.categoryFilterIdx-1])
	}

	statusLabels := []string{"Alle", "Todo", "Bezig", "Klaar"}

	header := fmt.Sprintf(
		"Filter: [c] Categorie: %s | [s] Status: %s",
		activeStyle(categoryLabel),
		activeStyle(statusLabels[m.statusFilterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == tasksStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Nieuwe taak\n\n%s", m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *TasksModel) applyFilter() {
	if m.categoryFilterIdx > 0 {
		m.filter.Category = &task.Categories[m.categoryFilterIdx-1]
	} else {
		m.filter.Category = nil
	}

	switch m.statusFilterIdx {
	case 1:
		m.filter.Status = new(task.StatusTodo)
	case 2:
		m.filter.Status = new(task.StatusInProgress)
	case 3:
		m.filter.Status = new(task.StatusDone)
	default:
		m.filter.Status = nil
	}

	m.tasks = task.Filter(m.all, m.filter)
	m.refreshTable()
}

func (m *TasksModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.tasks))
	for _, t := range m.tasks {
		deadline := ""
		if t.Deadline != nil {
			deadline = FormatDate(*t.Deadline)
		}
		rows = append(rows, table.Row{
			deadline,
			string(t.Status),
			string(t.Category),
			t.Title,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadTasksMsg struct {
	tasks []*task.Task
	err   error
}

func (m TasksModel) loadTasksCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		tasks, err := m.taskService.List(ctx, task.ListFilter{ProjectID: &m.projectID})
		return loadTasksMsg{tasks: tasks, err: err}
	}
}

type taskSavedMsg struct {
	err error
}

func (m TasksModel) toggleDoneCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.tasks) {
		return nil
	}

	t := m.tasks[idx]

	next := task.StatusDone
	if t.Status == task.StatusDone {
		next = task.StatusTodo
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.taskService.SetStatus(ctx, t.ID, next)
		return taskSavedMsg{err: err}
	}
}

func (m TasksModel) addCmd() tea.Cmd {
	title := m.formTitle
	category := task.Category(m.formCategory)
	deadlineStr := m.formDeadline

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		params := task.CreateParams{
			ProjectID: m.projectID,
			Title:     title,
			Category:  category,
		}

		if deadlineStr != "" {
			if deadline, err := time.Parse(time.DateOnly, deadlineStr); err == nil {
				params.Deadline = &deadline
			}
		}

		_, err := m.taskService.Create(ctx, params)
		return taskSavedMsg{err: err}
	}
}

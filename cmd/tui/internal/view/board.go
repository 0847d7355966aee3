package view

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/shopping"
)

type BoardModel struct {
	CommonModel
	shoppingService *shopping.Service
	projectID       uuid.UUID

	table   table.Model
	items   []*shopping.Item
	stats   shopping.BoardStats
	loading bool
	err     error
	status  string
}

func NewBoardModel(shoppingSvc *shopping.Service, projectID uuid.UUID) BoardModel {
	columns := []table.Column{
		{Title: "Fase", Width: 12},
		{Title: "Item", Width: 30},
		{Title: "Vraagprijs", Width: 12},
		{Title: "Bod", Width: 12},
		{Title: "Akkoord", Width: 12},
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

	return BoardModel{
		shoppingService: shoppingSvc,
		projectID:       projectID,
		table:           t,
		loading:         true,
	}
}

func (m BoardModel) Title() string { return "Marktplaats Bord" }
func (m BoardModel) ShortHelp() string {
	return "Esc: back | n: volgende fase | w: gewonnen | l: verloren | r: refresh"
}

func (m BoardModel) Init() tea.Cmd {
	return m.loadBoardCmd()
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadBoardMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.items = msg.items
		m.stats = msg.stats
		m.refreshTable()
		return m, nil

	case negotiationMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.status = ""
		return m, m.loadBoardCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadBoardCmd()
		case "n":
			return m, m.advanceCmd()
		case "w":
			return m, m.setStatusCmd(shopping.NegotiationWon)
		case "l":
			return m, m.setStatusCmd(shopping.NegotiationLost)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m BoardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Bord laden...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf(
		"Items: %d | Actief: %d | Gewonnen: %d | Bespaard: %s",
		m.stats.Total,
		m.stats.Active,
		m.stats.Won,
		activeStyle(FormatAmount(m.stats.SavedCents)),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *BoardModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.items))
	for _, item := range m.items {
		asking, offer, agreed := "", "", ""
		if item.Marketplace != nil {
			if item.Marketplace.AskingPriceCents > 0 {
				asking = FormatAmount(item.Marketplace.AskingPriceCents)
			}
			if item.Marketplace.OfferPriceCents > 0 {
				offer = FormatAmount(item.Marketplace.OfferPriceCents)
			}
			if item.Marketplace.AgreedPriceCents > 0 {
				agreed = FormatAmount(item.Marketplace.AgreedPriceCents)
			}
		}

		rows = append(rows, table.Row{
			string(item.NegotiationStage()),
			item.Name,
			asking,
			offer,
			agreed,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadBoardMsg struct {
	items []*shopping.Item
	stats shopping.BoardStats
	err   error
}

func (m BoardModel) loadBoardCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		columns, stats, err := m.shoppingService.Board(ctx, m.projectID)
		if err != nil {
			return loadBoardMsg{err: err}
		}

		// Flatten in funnel order so the table mirrors the board.
		var items []*shopping.Item
		for _, column := range columns {
			items = append(items, column.Items...)
		}

		return loadBoardMsg{items: items, stats: stats}
	}
}

type negotiationMsg struct {
	err error
}

func (m BoardModel) selectedItem() *shopping.Item {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return nil
	}

	return m.items[idx]
}

func (m BoardModel) advanceCmd() tea.Cmd {
	item := m.selectedItem()
	if item == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.shoppingService.AdvanceNegotiation(ctx, item.ID)
		if errors.Is(err, shopping.ErrNoNextStatus) {
			err = fmt.Errorf("kies [w]on of [l]ost na akkoord")
		}

		return negotiationMsg{err: err}
	}
}

func (m BoardModel) setStatusCmd(status shopping.NegotiationStatus) tea.Cmd {
	item := m.selectedItem()
	if item == nil {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.shoppingService.SetNegotiationStatus(ctx, item.ID, status)
		return negotiationMsg{err: err}
	}
}

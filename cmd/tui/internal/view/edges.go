package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/graph"
)

const edgeListLimit = 500

type EdgesModel struct {
	CommonModel
	graphSvc *graph.Service

	table   table.Model
	edges   []graph.EdgeDetail
	loading bool
	err     error
}

func NewEdgesModel(graphSvc *graph.Service) EdgesModel {
	columns := []table.Column{
		{Title: "Committee", Width: 35},
		{Title: "Payee", Width: 35},
		{Title: "Total", Width: 14},
		{Title: "First", Width: 12},
		{Title: "Last", Width: 12},
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

	return EdgesModel{
		graphSvc: graphSvc,
		table:    t,
	}
}

func (m EdgesModel) Title() string     { return "Spending Edges" }
func (m EdgesModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m EdgesModel) Init() tea.Cmd {
	return m.loadEdgesCmd()
}

type loadEdgesMsg struct {
	edges []graph.EdgeDetail
	err   error
}

func (m EdgesModel) loadEdgesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		edges, err := m.graphSvc.Edges(ctx, edgeListLimit)

		return loadEdgesMsg{edges: edges, err: err}
	}
}

func (m EdgesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadEdgesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.edges = msg.edges
		m.err = nil
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadEdgesCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *EdgesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.edges))

	for _, e := range m.edges {
		rows = append(rows, table.Row{
			e.SourceName,
			e.TargetName,
			FormatAmount(e.TotalCents),
			FormatDate(e.FirstDate),
			FormatDate(e.LastDate),
		})
	}

	m.table.SetRows(rows)
}

func (m EdgesModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress r to retry, Esc to go back.", m.err)
	}

	header := fmt.Sprintf("%d edges by total amount", len(m.edges))
	if m.loading {
		header += " (loading...)"
	}

	return header + "\n\n" + m.table.View()
}

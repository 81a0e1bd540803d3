package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Aaditya-Golash/elections-doc-explorer/internal/graph"
)

const entityListLimit = 500

type entitiesState int

const (
	entitiesStateBrowse entitiesState = iota
	entitiesStateSearch
)

type EntitiesModel struct {
	CommonModel
	graphSvc *graph.Service

	state    entitiesState
	table    table.Model
	entities []graph.Entity
	form     *huh.Form

	query   string
	loading bool
	err     error

	formQuery string
}

func NewEntitiesModel(graphSvc *graph.Service) EntitiesModel {
	columns := []table.Column{
		{Title: "Name", Width: 45},
		{Title: "Type", Width: 12},
		{Title: "Party", Width: 8},
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

	return EntitiesModel{
		graphSvc: graphSvc,
		table:    t,
	}
}

func (m EntitiesModel) Title() string { return "Entities" }
func (m EntitiesModel) ShortHelp() string {
	if m.state == entitiesStateSearch {
		return "Enter: search | Esc: cancel"
	}
	return "Esc: back | /: search | c: clear search | r: refresh"
}

func (m EntitiesModel) Init() tea.Cmd {
	return m.loadEntitiesCmd()
}

type loadEntitiesMsg struct {
	entities []graph.Entity
	err      error
}

func (m EntitiesModel) loadEntitiesCmd() tea.Cmd {
	query := m.query

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if query != "" {
			entities, err := m.graphSvc.Search(ctx, query, entityListLimit)
			return loadEntitiesMsg{entities: entities, err: err}
		}

		entities, err := m.graphSvc.Entities(ctx, entityListLimit)
		return loadEntitiesMsg{entities: entities, err: err}
	}
}

func (m EntitiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadEntitiesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.entities = msg.entities
		m.err = nil
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case entitiesStateBrowse:
		return m.updateBrowse(msg)
	case entitiesStateSearch:
		return m.updateSearch(msg)
	}

	return m, nil
}

func (m EntitiesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadEntitiesCmd()
		case "c":
			m.query = ""
			m.loading = true

			return m, m.loadEntitiesCmd()
		case "/":
			m.state = entitiesStateSearch
			m.formQuery = m.query
			m.form = huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("Search entities").Value(&m.formQuery),
			))

			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m EntitiesModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = entitiesStateBrowse
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.state = entitiesStateBrowse
		m.query = m.formQuery
		m.form = nil
		m.loading = true

		return m, m.loadEntitiesCmd()
	}

	return m, cmd
}

func (m *EntitiesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.entities))

	for _, e := range m.entities {
		party := ""
		if e.Party != nil {
			party = *e.Party
		}

		rows = append(rows, table.Row{e.Name, string(e.Type), party})
	}

	m.table.SetRows(rows)
}

func (m EntitiesModel) View() string {
	if m.state == entitiesStateSearch && m.form != nil {
		return m.form.View()
	}

	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress r to retry, Esc to go back.", m.err)
	}

	header := fmt.Sprintf("%d entities", len(m.entities))
	if m.query != "" {
		header += fmt.Sprintf(" matching %q", m.query)
	}

	if m.loading {
		header += " (loading...)"
	}

	return header + "\n\n" + m.table.View()
}

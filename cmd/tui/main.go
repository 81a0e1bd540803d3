package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/Aaditya-Golash/elections-doc-explorer/cmd/tui/internal/view"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/config"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/database"
	"github.com/Aaditya-Golash/elections-doc-explorer/internal/graph"
	graphStore "github.com/Aaditya-Golash/elections-doc-explorer/internal/graph/store"
)

type model struct {
	graphService *graph.Service

	currentView View

	entitiesView view.EntitiesModel
	edgesView    view.EdgesModel
}

type View int

const (
	ViewMenu     View = 0
	ViewEntities View = 1
	ViewEdges    View = 2
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

	graphSvc := graph.NewService(graphStore.New(db))

	return model{
		graphService: graphSvc,
		currentView:  ViewMenu,
		entitiesView: view.NewEntitiesModel(graphSvc),
		edgesView:    view.NewEdgesModel(graphSvc),
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
				m.currentView = ViewEntities
				m.entitiesView = view.NewEntitiesModel(m.graphService)

				return m, m.entitiesView.Init()
			case "2":
				m.currentView = ViewEdges
				m.edgesView = view.NewEdgesModel(m.graphService)

				return m, m.edgesView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewEntities:
		var newModel tea.Model
		newModel, cmd = m.entitiesView.Update(msg)
		m.entitiesView = newModel.(view.EntitiesModel)
	case ViewEdges:
		var newModel tea.Model
		newModel, cmd = m.edgesView.Update(msg)
		m.edgesView = newModel.(view.EdgesModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Elections Graph Browser\n\n" +
				"1. Browse Entities\n" +
				"2. Browse Spending Edges\n\n" +
				"q. Quit",
		)
	case ViewEntities:
		return m.entitiesView.View()
	case ViewEdges:
		return m.edgesView.View()
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

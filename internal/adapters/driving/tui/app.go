// Package tui provides the interactive terminal UI for doclens.
// It follows the Elm architecture via Bubbletea: one model, message-based
// updates, declarative view.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/doclens/doclens-cli/internal/adapters/driving/tui/styles"
	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/ports/driving"
)

// reportMsg carries a finished documentation fetch back into Update.
type reportMsg struct {
	report string
}

// App is the doclens TUI: a query input, a library selector, and a
// scrollable viewport showing the fetched report.
type App struct {
	styles  *styles.Styles
	input   textinput.Model
	spin    spinner.Model
	view    viewport.Model
	service driving.DocumentationService
	ctx     context.Context

	// libraries are the selectable corpora in display order.
	libraries []domain.Library
	selected  int

	loading bool
	ready   bool
	width   int
	height  int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the TUI application.
func NewApp(service driving.DocumentationService, domains domain.DomainTable) *App {
	s := styles.DefaultStyles()

	ti := textinput.New()
	ti.Placeholder = "Enter documentation query..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &App{
		styles:    s,
		input:     ti,
		spin:      sp,
		service:   service,
		ctx:       context.Background(),
		libraries: domains.Libraries(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context used for documentation requests.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeViewport()
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case reportMsg:
		a.loading = false
		a.view.SetContent(msg.report)
		a.view.GotoTop()
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd
	}

	return a.forward(msg)
}

// handleKey processes key presses.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit

	case "q":
		// Quit only when not typing a query.
		if !a.input.Focused() {
			return a, tea.Quit
		}

	case "tab":
		a.selected = (a.selected + 1) % len(a.libraries)
		return a, nil

	case "enter":
		if a.loading || a.input.Value() == "" {
			return a, nil
		}
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.fetch(a.input.Value()))

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		a.view, cmd = a.view.Update(msg)
		return a, cmd
	}

	return a.forward(msg)
}

// forward passes a message to the text input.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// fetch runs one documentation request off the UI goroutine.
func (a *App) fetch(query string) tea.Cmd {
	library := string(a.libraries[a.selected])
	ctx := a.ctx
	service := a.service

	return func() tea.Msg {
		report := service.GetDocumentation(ctx, query, library, domain.MaxResults)
		return reportMsg{report: report}
	}
}

// resizeViewport fits the document viewport under the header rows.
func (a *App) resizeViewport() {
	headerHeight := 6
	height := a.height - headerHeight
	if height < 3 {
		height = 3
	}
	width := a.width - 4
	if width < 20 {
		width = 20
	}

	if a.view.Width == 0 {
		a.view = viewport.New(width, height)
	} else {
		a.view.Width = width
		a.view.Height = height
	}
	a.input.Width = width - 10
}

// View renders the application.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	title := a.styles.Title.Render("doclens")

	var tabs []string
	for i, lib := range a.libraries {
		label := " " + string(lib) + " "
		if i == a.selected {
			tabs = append(tabs, a.styles.Selected.Render(label))
		} else {
			tabs = append(tabs, a.styles.Muted.Render(label))
		}
	}
	libraryRow := lipgloss.JoinHorizontal(lipgloss.Center, tabs...)

	queryRow := a.styles.Normal.Render("Query: ") + a.input.View()
	if a.loading {
		queryRow += "  " + a.spin.View() + a.styles.Muted.Render("fetching...")
	}

	help := a.styles.Help.Render("tab: library · enter: fetch · ↑/↓: scroll · esc: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		libraryRow,
		queryRow,
		a.styles.Document.Render(a.view.View()),
		help,
	)
}

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

// stubDocService implements driving.DocumentationService for testing.
type stubDocService struct {
	response    string
	lastQuery   string
	lastLibrary string
}

func (s *stubDocService) GetDocumentation(
	_ context.Context, query, library string, _ int,
) string {
	s.lastQuery = query
	s.lastLibrary = library
	return s.response
}

func newTestApp(service *stubDocService) *App {
	app := NewApp(service, domain.DefaultDomains())
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(*App)
}

func TestApp_ReadyAfterWindowSize(t *testing.T) {
	app := NewApp(&stubDocService{}, domain.DefaultDomains())
	assert.False(t, app.ready)
	assert.Equal(t, "Loading...", app.View())

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	app = model.(*App)

	assert.True(t, app.ready)
	assert.Contains(t, app.View(), "doclens")
}

func TestApp_TabCyclesLibraries(t *testing.T) {
	app := newTestApp(&stubDocService{})
	require.Equal(t, 0, app.selected)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	assert.Equal(t, 1, app.selected)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	assert.Equal(t, 0, app.selected, "wraps around")
}

func TestApp_EnterStartsFetch(t *testing.T) {
	service := &stubDocService{response: "report body"}
	app := newTestApp(service)
	app.input.SetValue("vector store")

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	assert.True(t, app.loading)
	require.NotNil(t, cmd)
}

func TestApp_EnterWithEmptyQueryIsNoop(t *testing.T) {
	app := newTestApp(&stubDocService{})

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	assert.False(t, app.loading)
	assert.Nil(t, cmd)
}

func TestApp_FetchUsesSelectedLibrary(t *testing.T) {
	service := &stubDocService{response: "report body"}
	app := newTestApp(service)

	// Select langchain, then run the fetch command directly.
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)

	msg := app.fetch("chat models")()
	report, ok := msg.(reportMsg)
	require.True(t, ok)

	assert.Equal(t, "report body", report.report)
	assert.Equal(t, "chat models", service.lastQuery)
	assert.Equal(t, "langchain", service.lastLibrary)
}

func TestApp_ReportMsgStopsLoading(t *testing.T) {
	app := newTestApp(&stubDocService{})
	app.loading = true

	model, _ := app.Update(reportMsg{report: "the report"})
	app = model.(*App)

	assert.False(t, app.loading)
	assert.Contains(t, app.view.View(), "the report")
}

func TestApp_EscQuits(t *testing.T) {
	app := newTestApp(&stubDocService{})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

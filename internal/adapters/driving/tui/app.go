// Package tui implements the interactive search UI: a query input, a
// result list, and a note detail pane, in a single bubbletea model.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/refdex-labs/refdex-cli/internal/core/domain"
)

// mode is the app's focus state.
type mode int

const (
	modeInput   mode = iota // typing a query
	modeResults             // navigating results
	modeDetail              // reading a note
)

// searchCompleted carries results back into the update loop.
type searchCompleted struct {
	query   string
	results []domain.QueryResult
}

// searchFailed carries a query error back into the update loop.
type searchFailed struct {
	err error
}

// noteLoaded carries a note for the detail pane.
type noteLoaded struct {
	doc *domain.Document
}

// App is the bubbletea model for the search UI.
type App struct {
	ports  *Ports
	styles *Styles
	ctx    context.Context

	input   textinput.Model
	results list.Model
	detail  viewport.Model
	mode    mode
	err     error
	width   int
	height  int
}

// NewApp creates the TUI app with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "search notes..."
	input.Focus()

	results := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	results.Title = "Results"
	results.SetShowStatusBar(false)
	results.SetFilteringEnabled(false)

	return &App{
		ports:   ports,
		styles:  DefaultStyles(),
		ctx:     context.Background(),
		input:   input,
		results: results,
		detail:  viewport.New(0, 0),
		mode:    modeInput,
		width:   80,
		height:  24,
	}, nil
}

// WithContext sets the context used for queries.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.results.SetSize(msg.Width, msg.Height-4)
		a.detail.Width = msg.Width
		a.detail.Height = msg.Height - 4
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case searchCompleted:
		a.err = nil
		a.results.Title = fmt.Sprintf("Results for %q", msg.query)
		a.results.SetItems(toItems(msg.results))
		a.mode = modeResults
		return a, nil

	case noteLoaded:
		a.err = nil
		a.detail.SetContent(a.styles.Title.Render(msg.doc.Title) + "\n\n" + msg.doc.Body)
		a.detail.GotoTop()
		a.mode = modeDetail
		return a, nil

	case searchFailed:
		a.err = msg.err
		return a, nil
	}

	return a, a.forward(msg)
}

// handleKey processes keyboard input per mode.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	switch a.mode {
	case modeInput:
		switch msg.Type {
		case tea.KeyEnter:
			query := a.input.Value()
			if query == "" {
				return a, nil
			}
			return a, a.search(query)
		case tea.KeyEsc:
			return a, tea.Quit
		}

	case modeResults:
		switch msg.String() {
		case "esc", "/":
			a.mode = modeInput
			a.input.Focus()
			return a, textinput.Blink
		case "q":
			return a, tea.Quit
		case "enter":
			if item, ok := a.results.SelectedItem().(resultItem); ok {
				return a, a.open(item.result.Document.ID)
			}
			return a, nil
		}

	case modeDetail:
		switch msg.String() {
		case "esc", "q":
			a.mode = modeResults
			return a, nil
		}
	}

	return a, a.forward(msg)
}

// forward routes messages to the focused component.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.mode {
	case modeInput:
		a.input, cmd = a.input.Update(msg)
	case modeResults:
		a.results, cmd = a.results.Update(msg)
	case modeDetail:
		a.detail, cmd = a.detail.Update(msg)
	}
	return cmd
}

// search runs the query off the update loop.
func (a *App) search(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := a.ports.Query.Search(a.ctx, query, domain.QueryOptions{Limit: 50})
		if err != nil {
			return searchFailed{err: err}
		}
		return searchCompleted{query: query, results: results}
	}
}

// open loads a note for the detail pane off the update loop.
func (a *App) open(id string) tea.Cmd {
	return func() tea.Msg {
		doc, err := a.ports.Catalog.Get(a.ctx, id)
		if err != nil {
			return searchFailed{err: err}
		}
		return noteLoaded{doc: doc}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	header := a.styles.Prompt.Render("refdex") + "  " + a.input.View()
	if a.err != nil {
		header += "\n" + a.styles.Error.Render(a.err.Error())
	}

	var body string
	switch a.mode {
	case modeDetail:
		body = a.detail.View() + "\n" + a.styles.Help.Render("esc back · q results")
	default:
		body = a.results.View() + "\n" + a.styles.Help.Render("enter search/open · esc input · q quit")
	}

	return header + "\n\n" + body
}

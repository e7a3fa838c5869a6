// Package tui is a terminal shell over the same pages the web server renders.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/damoang/angple-forum/internal/listing"
	"github.com/damoang/angple-forum/internal/routes"
	"github.com/damoang/angple-forum/internal/search"
	"github.com/damoang/angple-forum/internal/service"
	"github.com/damoang/angple-forum/internal/view"
)

const emptyResult = "ничего не найдено"

var (
	headingStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	navStyle     = lipgloss.NewStyle().Faint(true)
	activeStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Italic(true).Faint(true)
)

// Model is the bubbletea model. Each visit to a listing screen builds a new
// page, so leaving a screen discards its query.
type Model struct {
	ctx     context.Context
	service *service.ListingService
	path    string
	page    *listing.Page
	input   textinput.Model
	err     error
}

// New creates a model positioned at path. Unknown paths show the not-found screen.
func New(ctx context.Context, svc *service.ListingService, path string) Model {
	ti := textinput.New()
	ti.Placeholder = search.DefaultPlaceholder
	ti.CharLimit = search.MaxQueryLength

	m := Model{ctx: ctx, service: svc, input: ti}
	return m.navigate(path)
}

// Path returns the current route path
func (m Model) Path() string { return m.path }

// Page returns the current listing page, nil on home and not-found screens
func (m Model) Page() *listing.Page { return m.page }

// Err returns the last page load error
func (m Model) Err() error { return m.err }

func (m Model) navigate(path string) Model {
	m.path = path
	m.page = nil
	m.err = nil
	m.input.Reset()
	m.input.Blur()

	id, ok := routes.Lookup(path)
	if !ok {
		return m
	}
	kind, ok := routes.KindOf(id)
	if !ok {
		return m
	}

	page, err := m.service.Page(m.ctx, kind)
	if err != nil {
		m.err = err
		return m
	}
	m.page = page
	m.input.Placeholder = page.Input().Placeholder()
	m.input.Focus()
	return m
}

func (m Model) nextPath() string {
	for i, e := range routes.Table {
		if e.Path == m.path {
			return routes.Table[(i+1)%len(routes.Table)].Path
		}
	}
	return routes.Table[0].Path
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			return m.navigate(m.nextPath()), nil
		}
	}

	if m.page == nil {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.page.Input().SetValue(after)
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	for i, e := range routes.Table {
		if i > 0 {
			b.WriteString(navStyle.Render(" | "))
		}
		if e.Path == m.path {
			b.WriteString(activeStyle.Render(e.Label))
		} else {
			b.WriteString(navStyle.Render(e.Label))
		}
	}
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(fmt.Sprintf("Ошибка: %v\n", m.err))
	case m.page != nil:
		b.WriteString(headingStyle.Render(m.page.Heading()))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		rows := m.page.Rows()
		if len(rows) == 0 {
			b.WriteString(mutedStyle.Render(emptyResult))
			b.WriteString("\n")
		}
		for _, r := range rows {
			b.WriteString("• " + r.Text + "\n")
		}
	default:
		if _, ok := routes.Lookup(m.path); ok {
			b.WriteString(headingStyle.Render(view.SiteTitle))
			b.WriteString("\n")
		} else {
			b.WriteString(headingStyle.Render("Страница не найдена: " + m.path))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(navStyle.Render("tab: следующая страница • esc: выход"))
	return b.String()
}

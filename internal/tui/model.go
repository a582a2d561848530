// Package tui is the interactive terminal front end. The bubbletea program
// is the render loop: it redraws on a fixed tick, maps keys to app messages
// and runs searches as commands whose single result re-enters the loop.
package tui

import (
	"context"
	"errors"
	"fmt"
	"lol-watcher/internal/app"
	"lol-watcher/internal/constants"
	"lol-watcher/internal/domain"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

type Searcher interface {
	Search(ctx context.Context, region domain.Region, name string) (*domain.SearchResult, error)
}

type tickMsg time.Time

type Model struct {
	ctx      context.Context
	state    *app.State
	mapper   Mapper
	searcher Searcher
	logger   zerolog.Logger

	help    help.Model
	spinner spinner.Model

	// input edits the search text; the state keeps the authoritative value
	input textinput.Model

	// detail scrolls the selected match; detailSel names what it shows
	detail    viewport.Model
	detailSel string

	// cancels the search in flight
	cancel context.CancelFunc

	width  int
	height int
	now    time.Time
}

func New(ctx context.Context, state *app.State, searcher Searcher, mapper Mapper, logger zerolog.Logger) Model {
	input := textinput.New()
	input.Placeholder = "summoner name"
	input.CharLimit = constants.NameCharLimit
	input.PlaceholderStyle = styleMuted
	input.Cursor.Style = styleCursor
	input.Cursor.SetMode(cursor.CursorStatic)

	m := Model{
		ctx:      ctx,
		state:    state,
		mapper:   mapper,
		searcher: searcher,
		logger:   logger,
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styleSearching)),
		input:    input,
		detail:   viewport.New(0, 0),
		now:      time.Now(),
	}
	m.syncInput()
	m.syncDetail()
	return m
}

// Run drives the program until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.cancelSearch()
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(constants.TickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case spinner.TickMsg:
		// the spinner only animates while a search is running
		if _, searching := m.state.Pending(); !searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.mapper.Edits(m.state, msg) {
			return m.edit(msg)
		}
		return m.apply(m.mapper.Map(m.state, msg))

	case app.SearchCompleted:
		if q, ok := m.state.Pending(); ok && q.Seq == msg.Query.Seq {
			m.cancelSearch()
			m.cancel = nil
		}
		if msg.Err != nil {
			m.logger.Warn().Err(msg.Err).Str("name", msg.Query.Name).Msg("search failed")
		}
		return m.apply(msg)
	}
	return m, nil
}

func (m Model) apply(msg app.Message) (tea.Model, tea.Cmd) {
	// the detail pane has no cursor of its own, up and down scroll it
	if m.state.Focus() == app.PaneMatchDetail {
		switch msg.(type) {
		case app.MoveSelectionUp:
			m.detail.LineUp(1)
			return m, nil
		case app.MoveSelectionDown:
			m.detail.LineDown(1)
			return m, nil
		}
	}

	q := m.state.Apply(msg)
	m.syncInput()
	m.syncDetail()
	if _, ok := msg.(app.SearchCompleted); ok {
		m.detail.GotoTop()
	}

	if m.state.Done() {
		m.cancelSearch()
		return m, tea.Quit
	}
	if q == nil {
		return m, nil
	}

	m.cancelSearch()
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel

	m.logger.Debug().Uint64("seq", q.Seq).Str("name", q.Name).Str("region", q.Region.Code()).Msg("dispatching search")
	return m, tea.Batch(m.search(ctx, *q), m.spinner.Tick)
}

// edit hands a key to the text field and stores the edited text back in the
// state, which flattens anything pasted onto one line.
func (m Model) edit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state.Apply(app.ReplaceInput{Text: m.input.Value()})
	m.syncInput()
	return m, cmd
}

// syncInput mirrors the state's search text and focus into the text field.
func (m *Model) syncInput() {
	if m.input.Value() != m.state.Input() {
		m.input.SetValue(m.state.Input())
		// the field cuts pasted text at its limit
		m.state.Apply(app.ReplaceInput{Text: m.input.Value()})
	}
	if m.state.Focus() == app.PaneInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// syncDetail loads the selected match into the detail viewport, back at the
// top whenever the selection changed.
func (m *Model) syncDetail() {
	m.detail.SetContent(strings.Join(m.matchDetailLines(), "\n"))

	sel := ""
	if match, ok := m.state.SelectedMatch(); ok {
		sel = fmt.Sprintf("%d/%s", m.state.Cursor(), match.ID)
	}
	if sel != m.detailSel {
		m.detailSel = sel
		m.detail.GotoTop()
	}
}

func (m *Model) resize() {
	l := m.layout()
	m.input.Width = max(l.inputW-2-lipgloss.Width(m.input.Prompt)-1, 1)
	m.detail.Width = max(l.detailW-2, 0)
	// one row of the pane goes to its title
	m.detail.Height = max(l.bodyH-3, 0)
	m.syncDetail()
}

func (m Model) search(ctx context.Context, q app.Query) tea.Cmd {
	searcher := m.searcher
	return func() tea.Msg {
		res, err := searcher.Search(ctx, q.Region, q.Name)
		return app.SearchCompleted{Query: q, Result: res, Err: err}
	}
}

func (m Model) cancelSearch() {
	if m.cancel != nil {
		m.cancel()
	}
}

package tui

import (
	"lol-watcher/internal/app"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyMap struct {
	Quit        key.Binding
	NextPane    key.Binding
	PrevPane    key.Binding
	Up          key.Binding
	Down        key.Binding
	FocusInput  key.Binding
	FocusRegion key.Binding
	FocusList   key.Binding
	FocusDetail key.Binding
	QuickSearch key.Binding
	Select      key.Binding

	// text input pane; every other key there edits the search text
	Submit key.Binding
	Cancel key.Binding
	Clear  key.Binding
	Paste  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		NextPane:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevPane:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		FocusInput:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "search")),
		FocusRegion: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "region")),
		FocusList:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "matches")),
		FocusDetail: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "match")),
		QuickSearch: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "quick search")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		Clear:  key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "clear")),
		Paste:  key.NewBinding(key.WithKeys("insert", "ctrl+v"), key.WithHelp("ins", "paste")),
	}
}

// helpKeys adapts a binding list to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }

func (k KeyMap) helpFor(focus app.Pane) helpKeys {
	if focus == app.PaneInput {
		return helpKeys{k.Submit, k.Paste, k.Clear, k.NextPane, k.Cancel}
	}
	return helpKeys{k.Quit, k.NextPane, k.Up, k.Down, k.FocusInput, k.FocusRegion, k.FocusList, k.QuickSearch}
}

// Mapper turns key presses into application messages. What a key means
// depends on which pane has focus.
type Mapper struct {
	Keys KeyMap

	// Clipboard reads the system clipboard; nil disables pasting.
	Clipboard func() (string, error)

	// QuickSearch is the preset search bound to the quick search key.
	QuickSearch *app.Search
}

// Edits reports whether msg is text editing for the search field rather than
// an application command. Bracketed pastes from the terminal land here too.
func (m Mapper) Edits(s *app.State, msg tea.KeyMsg) bool {
	if s.Focus() != app.PaneInput {
		return false
	}
	return !key.Matches(msg, m.Keys.Cancel, m.Keys.NextPane, m.Keys.PrevPane, m.Keys.Submit, m.Keys.Clear, m.Keys.Paste)
}

func (m Mapper) Map(s *app.State, msg tea.KeyMsg) app.Message {
	if s.Focus() == app.PaneInput {
		return m.mapInput(s, msg)
	}
	return m.mapNavigation(s, msg)
}

func (m Mapper) mapInput(s *app.State, msg tea.KeyMsg) app.Message {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		return app.Quit{}
	case key.Matches(msg, m.Keys.NextPane):
		return app.ChangeFocus{Pane: s.Focus().Next()}
	case key.Matches(msg, m.Keys.PrevPane):
		return app.ChangeFocus{Pane: s.Focus().Prev()}
	case key.Matches(msg, m.Keys.Submit):
		return app.Search{Region: s.Region(), Name: s.Input()}
	case key.Matches(msg, m.Keys.Clear):
		return app.ClearInput{}
	case key.Matches(msg, m.Keys.Paste):
		return app.ReplaceInput{Text: strings.TrimSpace(m.paste())}
	}
	return app.NoOp{}
}

func (m Mapper) mapNavigation(s *app.State, msg tea.KeyMsg) app.Message {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return app.Quit{}
	case key.Matches(msg, m.Keys.NextPane):
		return app.ChangeFocus{Pane: s.Focus().Next()}
	case key.Matches(msg, m.Keys.PrevPane):
		return app.ChangeFocus{Pane: s.Focus().Prev()}
	case key.Matches(msg, m.Keys.Up):
		return app.MoveSelectionUp{}
	case key.Matches(msg, m.Keys.Down):
		return app.MoveSelectionDown{}
	case key.Matches(msg, m.Keys.FocusInput):
		return app.ChangeFocus{Pane: app.PaneInput}
	case key.Matches(msg, m.Keys.FocusRegion):
		return app.ChangeFocus{Pane: app.PaneRegion}
	case key.Matches(msg, m.Keys.FocusList):
		return app.ChangeFocus{Pane: app.PaneMatchList}
	case key.Matches(msg, m.Keys.FocusDetail):
		return app.ChangeFocus{Pane: app.PaneMatchDetail}
	case key.Matches(msg, m.Keys.QuickSearch):
		if m.QuickSearch == nil {
			return app.Notify{Kind: app.LogWarning, Message: "quick search needs WATCHER_NAME"}
		}
		return *m.QuickSearch
	case key.Matches(msg, m.Keys.Select):
		switch s.Focus() {
		case app.PaneRegion:
			return app.ChangeFocus{Pane: app.PaneInput}
		case app.PaneMatchList:
			return app.ChangeFocus{Pane: app.PaneMatchDetail}
		case app.PaneMatchDetail:
			return app.ChangeFocus{Pane: app.PaneMatchList}
		}
	}
	return app.NoOp{}
}

// paste never fails; an unreadable clipboard pastes nothing.
func (m Mapper) paste() string {
	if m.Clipboard == nil {
		return ""
	}
	text, err := m.Clipboard()
	if err != nil {
		return ""
	}
	return text
}

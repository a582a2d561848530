// Package app holds the interactive application state and the transitions
// applied to it. It performs no I/O: searches are handed to the caller as a
// Query and come back as a SearchCompleted message.
package app

import (
	"fmt"
	"lol-watcher/internal/constants"
	"lol-watcher/internal/domain"
	"strings"
	"time"
)

// Query is a search the loop must run and report back.
type Query struct {
	Seq    uint64
	Region domain.Region
	Name   string
}

type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

type State struct {
	input        []rune
	regions      []domain.Region
	regionCursor int
	focus        Pane

	result domain.SearchResult
	cursor int

	status  Status
	history []LogEntry

	seq     uint64
	pending *Query
	done    bool

	now func() time.Time
}

type Option func(*State)

func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

func WithFocus(p Pane) Option {
	return func(s *State) { s.focus = p }
}

func New(region domain.Region, opts ...Option) *State {
	s := &State{
		regions: domain.Regions(),
		focus:   PaneInput,
		now:     time.Now,
	}
	for i, r := range s.regions {
		if r == region {
			s.regionCursor = i
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *State) Input() string               { return string(s.input) }
func (s *State) Region() domain.Region       { return s.regions[s.regionCursor] }
func (s *State) Regions() []domain.Region    { return s.regions }
func (s *State) Focus() Pane                 { return s.focus }
func (s *State) Result() domain.SearchResult { return s.result }
func (s *State) Cursor() int                 { return s.cursor }
func (s *State) Status() Status              { return s.status }
func (s *State) Done() bool                  { return s.done }
func (s *State) Pending() (Query, bool) {
	if s.pending == nil {
		return Query{}, false
	}
	return *s.pending, true
}

// TrackedName is the name of the summoner the result belongs to.
func (s *State) TrackedName() string {
	if s.result.Summoner == nil {
		return ""
	}
	return s.result.Summoner.Name
}

func (s *State) SelectedMatch() (domain.Match, bool) {
	if len(s.result.Matches) == 0 {
		return domain.Match{}, false
	}
	return s.result.Matches[s.cursor], true
}

// Log returns the most recent entry.
func (s *State) Log() (LogEntry, bool) {
	if len(s.history) == 0 {
		return LogEntry{}, false
	}
	return s.history[len(s.history)-1], true
}

func (s *State) History() []LogEntry { return s.history }

// Apply performs one transition. A non-nil Query means a search has to be
// executed and its outcome fed back as SearchCompleted.
func (s *State) Apply(msg Message) *Query {
	switch m := msg.(type) {
	case Quit:
		s.done = true
		s.pending = nil
	case ChangeFocus:
		s.focus = m.Pane
	case Search:
		return s.startSearch(m)
	case SearchCompleted:
		s.completeSearch(m)
	case MoveSelectionUp:
		s.MoveSelection(Up)
	case MoveSelectionDown:
		s.MoveSelection(Down)
	case InsertText:
		s.input = append(s.input, []rune(singleLine(m.Text))...)
	case DeleteBackward:
		if len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
		}
	case ClearInput:
		s.input = s.input[:0]
	case ReplaceInput:
		s.input = []rune(singleLine(m.Text))
	case Notify:
		s.logf(m.Kind, "%s", m.Message)
	case NoOp:
	}
	return nil
}

func (s *State) FocusNext() {
	s.focus = s.focus.Next()
}

// MoveSelection moves the cursor of the focused list with wraparound. Only
// the match list and the region picker have a cursor.
func (s *State) MoveSelection(dir Direction) {
	switch s.focus {
	case PaneMatchList:
		s.cursor = wrap(s.cursor, int(dir), len(s.result.Matches))
	case PaneRegion:
		s.regionCursor = wrap(s.regionCursor, int(dir), len(s.regions))
	}
}

func (s *State) startSearch(m Search) *Query {
	name := strings.TrimSpace(m.Name)
	s.input = s.input[:0]
	if name == "" {
		s.logf(LogWarning, "type a summoner name first")
		return nil
	}

	s.seq++
	q := Query{Seq: s.seq, Region: m.Region, Name: name}
	s.pending = &q
	s.status = Status{Kind: StatusSearching, Name: name, Region: m.Region}
	s.logf(LogInfo, "searching %s in %s", name, m.Region)
	return &q
}

func (s *State) completeSearch(m SearchCompleted) {
	if s.pending == nil || m.Query.Seq != s.pending.Seq {
		return
	}
	s.pending = nil
	q := m.Query

	if m.Err != nil || m.Result == nil || m.Result.Summoner == nil {
		// nothing from an earlier search stays visible under a failure
		s.result = domain.SearchResult{}
		s.cursor = 0
		s.status = Status{Kind: StatusFailed, Name: q.Name, Region: q.Region}
		if m.Err != nil {
			s.logf(LogError, "%v", m.Err)
		} else {
			s.logf(LogError, "no result for %s in %s", q.Name, q.Region)
		}
		return
	}

	s.result = *m.Result
	s.cursor = 0
	s.focus = PaneMatchList
	s.status = Status{Kind: StatusIdle}
	s.logf(LogInfo, "found %s: %d ranks, %d masteries, %d matches",
		m.Result.Summoner.Name, len(m.Result.Ranks), len(m.Result.Masteries), len(m.Result.Matches))
}

func (s *State) logf(kind LogKind, format string, args ...any) {
	s.history = append(s.history, LogEntry{
		Kind:    kind,
		Time:    s.now(),
		Message: fmt.Sprintf(format, args...),
	})
	if over := len(s.history) - constants.LogHistoryLimit; over > 0 {
		s.history = append(s.history[:0], s.history[over:]...)
	}
}

func wrap(i, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

// singleLine flattens text into the one-line search buffer. Surrounding
// spaces are kept so that a typed separator survives until the next rune.
func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ").Replace(s)
}

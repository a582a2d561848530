package app

import (
	"errors"
	"fmt"
	"lol-watcher/internal/domain"
	"testing"
	"time"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newState(opts ...Option) *State {
	return New(domain.KR, append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

func assertEqual[T comparable](t *testing.T, field string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}

func result(name string, matches int) *domain.SearchResult {
	r := &domain.SearchResult{
		Summoner:  &domain.Summoner{Name: name},
		Ranks:     []domain.RankEntry{{Tier: "GOLD"}},
		Masteries: []domain.Mastery{{ChampionName: "Ahri"}},
	}
	for i := 0; i < matches; i++ {
		r.Matches = append(r.Matches, domain.Match{ID: fmt.Sprintf("%s_%d", name, i)})
	}
	return r
}

// runSearch issues a Search and feeds back the given outcome.
func runSearch(t *testing.T, s *State, name string, res *domain.SearchResult, err error) {
	t.Helper()
	q := s.Apply(Search{Region: s.Region(), Name: name})
	if q == nil {
		t.Fatalf("Apply(Search{%q}) returned no query", name)
	}
	s.Apply(SearchCompleted{Query: *q, Result: res, Err: err})
}

func TestFocusNextCycles(t *testing.T) {
	for _, start := range Panes() {
		s := newState(WithFocus(start))
		for range Panes() {
			s.FocusNext()
		}
		assertEqual(t, "focus after full cycle from "+start.String(), s.Focus(), start)
	}
}

func TestFocusOrder(t *testing.T) {
	s := newState(WithFocus(PaneHeader))
	want := []Pane{PaneInput, PaneRegion, PaneRank, PaneMasteries, PaneMatchList, PaneMatchDetail, PaneFooter, PaneHeader}
	for _, w := range want {
		s.FocusNext()
		assertEqual(t, "focus", s.Focus(), w)
	}
	assertEqual(t, "prev of header", PaneHeader.Prev(), PaneFooter)
}

func TestMoveSelectionWraps(t *testing.T) {
	s := newState()
	runSearch(t, s, "Alice", result("Alice", 3), nil)
	assertEqual(t, "focus", s.Focus(), PaneMatchList)
	assertEqual(t, "cursor", s.Cursor(), 0)

	s.Apply(MoveSelectionUp{})
	assertEqual(t, "cursor after up from 0", s.Cursor(), 2)

	s.Apply(MoveSelectionDown{})
	assertEqual(t, "cursor after down from last", s.Cursor(), 0)

	s.Apply(MoveSelectionDown{})
	m, ok := s.SelectedMatch()
	assertEqual(t, "selected ok", ok, true)
	assertEqual(t, "selected id", m.ID, "Alice_1")
}

func TestMoveSelectionEmptyList(t *testing.T) {
	s := newState(WithFocus(PaneMatchList))
	s.Apply(MoveSelectionUp{})
	s.Apply(MoveSelectionDown{})
	assertEqual(t, "cursor", s.Cursor(), 0)
	_, ok := s.SelectedMatch()
	assertEqual(t, "selected ok", ok, false)
}

func TestMoveSelectionRegion(t *testing.T) {
	s := newState(WithFocus(PaneRegion))
	assertEqual(t, "region", s.Region(), domain.KR)

	s.Apply(MoveSelectionUp{})
	assertEqual(t, "region after up from first", s.Region(), domain.EUW)

	s.Apply(MoveSelectionDown{})
	s.Apply(MoveSelectionDown{})
	assertEqual(t, "region", s.Region(), domain.RU)
}

func TestMoveSelectionOtherPanesNoOp(t *testing.T) {
	s := newState()
	runSearch(t, s, "Alice", result("Alice", 3), nil)
	s.Apply(ChangeFocus{Pane: PaneRank})
	s.Apply(MoveSelectionDown{})
	assertEqual(t, "cursor", s.Cursor(), 0)
	assertEqual(t, "region", s.Region(), domain.KR)
}

func TestSearchReplacesResult(t *testing.T) {
	s := newState()
	runSearch(t, s, "Alice", result("Alice", 3), nil)
	s.Apply(MoveSelectionDown{})

	bob := result("Bob", 1)
	bob.Masteries = nil // mastery fetch failed
	runSearch(t, s, "Bob", bob, nil)

	r := s.Result()
	assertEqual(t, "summoner", r.Summoner.Name, "Bob")
	assertEqual(t, "masteries", len(r.Masteries), 0)
	assertEqual(t, "matches", len(r.Matches), 1)
	assertEqual(t, "cursor", s.Cursor(), 0)
	assertEqual(t, "status", s.Status().Kind, StatusIdle)
}

func TestSearchFailureClearsResult(t *testing.T) {
	s := newState()
	runSearch(t, s, "Alice", result("Alice", 3), nil)
	s.Apply(ChangeFocus{Pane: PaneInput})

	runSearch(t, s, "Nobody", nil, errors.New("no such summoner"))

	r := s.Result()
	if r.Summoner != nil || r.Ranks != nil || r.Masteries != nil || r.Matches != nil {
		t.Errorf("result = %+v, want empty", r)
	}
	assertEqual(t, "status", s.Status(), Status{Kind: StatusFailed, Name: "Nobody", Region: domain.KR})
	assertEqual(t, "focus", s.Focus(), PaneInput)

	entry, ok := s.Log()
	assertEqual(t, "log ok", ok, true)
	assertEqual(t, "log kind", entry.Kind, LogError)
	assertEqual(t, "log time", entry.Time, fixedNow)
}

func TestSearchTrimsAndClearsInput(t *testing.T) {
	s := newState()
	s.Apply(InsertText{Text: "  Faker "})

	q := s.Apply(Search{Region: domain.EUW, Name: s.Input()})
	if q == nil {
		t.Fatal("Apply(Search) returned nil")
	}
	assertEqual(t, "query name", q.Name, "Faker")
	assertEqual(t, "query region", q.Region, domain.EUW)
	assertEqual(t, "input", s.Input(), "")
	assertEqual(t, "status", s.Status(), Status{Kind: StatusSearching, Name: "Faker", Region: domain.EUW})

	pending, ok := s.Pending()
	assertEqual(t, "pending", ok, true)
	assertEqual(t, "pending seq", pending.Seq, q.Seq)
}

func TestSearchEmptyName(t *testing.T) {
	s := newState()
	if q := s.Apply(Search{Region: domain.KR, Name: "   "}); q != nil {
		t.Fatalf("Apply(Search{blank}) = %+v, want nil", q)
	}
	entry, _ := s.Log()
	assertEqual(t, "log kind", entry.Kind, LogWarning)
	assertEqual(t, "status", s.Status().Kind, StatusIdle)
}

func TestStaleCompletionIgnored(t *testing.T) {
	s := newState()
	first := s.Apply(Search{Region: domain.KR, Name: "Alice"})
	second := s.Apply(Search{Region: domain.KR, Name: "Bob"})

	s.Apply(SearchCompleted{Query: *first, Result: result("Alice", 2)})
	assertEqual(t, "summoner set by stale completion", s.Result().Summoner == nil, true)

	s.Apply(SearchCompleted{Query: *second, Result: result("Bob", 1)})
	assertEqual(t, "summoner", s.TrackedName(), "Bob")
}

func TestInputEditing(t *testing.T) {
	s := newState()
	s.Apply(InsertText{Text: "Hide"})
	s.Apply(InsertText{Text: " on bush"})
	assertEqual(t, "input", s.Input(), "Hide on bush")

	s.Apply(DeleteBackward{})
	assertEqual(t, "input", s.Input(), "Hide on bus")

	s.Apply(ReplaceInput{Text: "도란"})
	assertEqual(t, "input", s.Input(), "도란")
	s.Apply(DeleteBackward{})
	assertEqual(t, "input", s.Input(), "도")

	s.Apply(ClearInput{})
	s.Apply(DeleteBackward{})
	assertEqual(t, "input", s.Input(), "")
}

func TestQuit(t *testing.T) {
	s := newState()
	s.Apply(Search{Region: domain.KR, Name: "Alice"})
	s.Apply(Quit{})
	assertEqual(t, "done", s.Done(), true)
	_, pending := s.Pending()
	assertEqual(t, "pending", pending, false)
}

func TestLogHistoryBounded(t *testing.T) {
	s := newState()
	for i := 0; i < 120; i++ {
		s.Apply(Notify{Kind: LogInfo, Message: fmt.Sprint(i)})
	}
	h := s.History()
	if len(h) != 50 {
		t.Fatalf("len(History) = %d, want 50", len(h))
	}
	assertEqual(t, "oldest", h[0].Message, "70")
	assertEqual(t, "newest", h[len(h)-1].Message, "119")
}

func TestInputStaysOnOneLine(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{"insert with newline", InsertText{Text: "Hide\non bush"}, "Hide on bush"},
		{"insert with crlf and tab", InsertText{Text: "Hide\r\non\tbush"}, "Hide on bush"},
		{"replace with newline", ReplaceInput{Text: "Hide\non bush"}, "Hide on bush"},
		{"trailing space kept", ReplaceInput{Text: "Hide "}, "Hide "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState()
			s.Apply(tt.msg)
			assertEqual(t, "input", s.Input(), tt.want)
		})
	}
}

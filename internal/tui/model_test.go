package tui

import (
	"context"
	"errors"
	"fmt"
	"lol-watcher/internal/app"
	"lol-watcher/internal/domain"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

type fakeSearcher struct {
	results map[string]*domain.SearchResult
	calls   []string
}

func (f *fakeSearcher) Search(_ context.Context, region domain.Region, name string) (*domain.SearchResult, error) {
	f.calls = append(f.calls, region.Code()+"/"+name)
	if r, ok := f.results[name]; ok {
		return r, nil
	}
	return nil, errors.New("no such summoner")
}

// blockingSearcher holds every search open until its context ends.
type blockingSearcher struct {
	started chan context.Context
}

func newBlockingSearcher() *blockingSearcher {
	return &blockingSearcher{started: make(chan context.Context, 4)}
}

func (b *blockingSearcher) Search(ctx context.Context, _ domain.Region, _ string) (*domain.SearchResult, error) {
	b.started <- ctx
	<-ctx.Done()
	return nil, ctx.Err()
}

func newTestModel(t *testing.T, searcher Searcher) Model {
	t.Helper()
	return newSizedModel(t, searcher, 160, 40)
}

func newSizedModel(t *testing.T, searcher Searcher, w, h int) Model {
	t.Helper()
	m := New(context.Background(), app.New(domain.KR), searcher, Mapper{Keys: DefaultKeyMap()}, zerolog.Nop())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

// submitBlocked types name, presses enter and runs the search command in the
// background. It returns the context the searcher received and a channel
// with the eventual completion.
func submitBlocked(t *testing.T, m Model, s *blockingSearcher, name string) (Model, context.Context, <-chan *app.SearchCompleted) {
	t.Helper()
	m = typeText(t, m, name)
	updated, cmd := m.Update(keyOf(tea.KeyEnter))
	if cmd == nil {
		t.Fatalf("enter did not start a search for %s", name)
	}

	done := make(chan *app.SearchCompleted, 1)
	go func() { done <- findCompletion(cmd) }()

	select {
	case ctx := <-s.started:
		return updated.(Model), ctx, done
	case <-time.After(time.Second):
		t.Fatalf("search for %s never reached the searcher", name)
	}
	return updated.(Model), nil, done
}

func waitCompletion(t *testing.T, done <-chan *app.SearchCompleted) *app.SearchCompleted {
	t.Helper()
	select {
	case c := <-done:
		return c
	case <-time.After(time.Second):
		t.Fatal("search did not return after cancellation")
	}
	return nil
}

// press feeds a key and returns the updated model and any search result the
// resulting command produced.
func press(t *testing.T, m Model, k tea.KeyMsg) (Model, *app.SearchCompleted) {
	t.Helper()
	updated, cmd := m.Update(k)
	return updated.(Model), findCompletion(cmd)
}

func findCompletion(cmd tea.Cmd) *app.SearchCompleted {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case app.SearchCompleted:
		return &msg
	case tea.BatchMsg:
		for _, c := range msg {
			if done := findCompletion(c); done != nil {
				return done
			}
		}
	}
	return nil
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, runes(string(r)))
	}
	return m
}

func sampleResult() *domain.SearchResult {
	return &domain.SearchResult{
		Summoner: &domain.Summoner{Name: "Faker", Level: 700, Region: domain.KR},
		Ranks:    []domain.RankEntry{{QueueType: "RANKED_SOLO_5x5", Tier: "CHALLENGER", Wins: 3, Losses: 1}},
		Matches: []domain.Match{
			{GameMode: "CLASSIC", Teams: []domain.Team{{ID: 100, Win: true, Participants: []domain.Participant{{SummonerName: "Faker", ChampionName: "Ahri", Win: true}}}}},
			{GameMode: "ARAM", Teams: []domain.Team{{ID: 200, Participants: []domain.Participant{{SummonerName: "Faker", ChampionName: "Zed"}}}}},
		},
	}
}

func TestSearchFlow(t *testing.T) {
	searcher := &fakeSearcher{results: map[string]*domain.SearchResult{"Faker": sampleResult()}}
	m := newTestModel(t, searcher)

	m = typeText(t, m, "Faker")
	if got := m.state.Input(); got != "Faker" {
		t.Fatalf("input = %q, want Faker", got)
	}

	m, done := press(t, m, keyOf(tea.KeyEnter))
	if done == nil {
		t.Fatal("enter did not start a search")
	}
	if got := m.state.Status().Kind; got != app.StatusSearching {
		t.Errorf("status = %v, want searching", got)
	}
	if !strings.Contains(m.View(), "searching Faker") {
		t.Errorf("View() does not show the running search")
	}

	updated, _ := m.Update(*done)
	m = updated.(Model)

	if len(searcher.calls) != 1 || searcher.calls[0] != "kr/Faker" {
		t.Errorf("calls = %v", searcher.calls)
	}
	if m.state.Focus() != app.PaneMatchList {
		t.Errorf("focus = %v, want matches", m.state.Focus())
	}

	view := m.View()
	for _, want := range []string{"Faker", "lvl 700", "CHALLENGER", "won", "lose", "Blue Team"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m, _ = press(t, m, runes("j"))
	if m.state.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", m.state.Cursor())
	}
}

func TestSearchFailureShowsStatus(t *testing.T) {
	m := newTestModel(t, &fakeSearcher{})

	m = typeText(t, m, "Nobody")
	m, done := press(t, m, keyOf(tea.KeyEnter))
	if done == nil {
		t.Fatal("enter did not start a search")
	}
	updated, _ := m.Update(*done)
	m = updated.(Model)

	if got := m.state.Status(); got.Kind != app.StatusFailed || got.Name != "Nobody" {
		t.Errorf("status = %+v, want failed for Nobody", got)
	}
	if !strings.Contains(m.View(), "failed Nobody") {
		t.Errorf("View() does not show the failure")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, &fakeSearcher{})
	m, _ = press(t, m, keyOf(tea.KeyTab))

	updated, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q did not quit")
	}
	if !updated.(Model).state.Done() {
		t.Errorf("state not done after quit")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := New(context.Background(), app.New(domain.KR), &fakeSearcher{}, Mapper{Keys: DefaultKeyMap()}, zerolog.Nop())
	if got := m.View(); got != "loading..." {
		t.Errorf("View() before size = %q", got)
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	if got := updated.(Model).View(); !strings.Contains(got, "too small") {
		t.Errorf("View() = %q, want too small notice", got)
	}
}

func TestNewSearchCancelsPrevious(t *testing.T) {
	searcher := newBlockingSearcher()
	m := newTestModel(t, searcher)

	m, first, firstDone := submitBlocked(t, m, searcher, "Faker")
	m, second, _ := submitBlocked(t, m, searcher, "Caps")

	if !errors.Is(first.Err(), context.Canceled) {
		t.Errorf("first search ctx err = %v, want canceled", first.Err())
	}
	if second.Err() != nil {
		t.Errorf("second search ctx err = %v, want nil", second.Err())
	}

	stale := waitCompletion(t, firstDone)
	if !errors.Is(stale.Err, context.Canceled) {
		t.Errorf("first search err = %v, want canceled", stale.Err)
	}
	updated, _ := m.Update(*stale)
	m = updated.(Model)
	if got := m.state.Status(); got.Kind != app.StatusSearching || got.Name != "Caps" {
		t.Errorf("status = %+v, want still searching Caps", got)
	}

	m.Update(keyOf(tea.KeyEsc))
	if !errors.Is(second.Err(), context.Canceled) {
		t.Errorf("second search ctx err after quit = %v, want canceled", second.Err())
	}
}

func TestQuitCancelsSearch(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
	}{
		{"esc in search box", []tea.KeyMsg{keyOf(tea.KeyEsc)}},
		{"q from another pane", []tea.KeyMsg{keyOf(tea.KeyTab), runes("q")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := newBlockingSearcher()
			m, ctx, done := submitBlocked(t, newTestModel(t, searcher), searcher, "Faker")

			var cmd tea.Cmd
			for _, k := range tt.keys {
				var updated tea.Model
				updated, cmd = m.Update(k)
				m = updated.(Model)
			}
			if cmd == nil {
				t.Fatal("quit returned no command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("last key did not quit")
			}
			if !errors.Is(ctx.Err(), context.Canceled) {
				t.Errorf("search ctx err = %v, want canceled", ctx.Err())
			}
			waitCompletion(t, done)
		})
	}
}

func TestInputCursorEditing(t *testing.T) {
	m := newTestModel(t, &fakeSearcher{})

	m = typeText(t, m, "Fakr")
	m, _ = press(t, m, keyOf(tea.KeyLeft))
	m = typeText(t, m, "e")
	if got := m.state.Input(); got != "Faker" {
		t.Fatalf("input = %q, want Faker", got)
	}

	m, _ = press(t, m, keyOf(tea.KeyHome))
	m, _ = press(t, m, keyOf(tea.KeyDelete))
	if got := m.state.Input(); got != "" {
		t.Errorf("input after delete = %q, want cleared", got)
	}
}

func TestBracketedPasteStaysOnOneLine(t *testing.T) {
	m := newTestModel(t, &fakeSearcher{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Hide\non bush"), Paste: true})
	if got := m.state.Input(); got != "Hide on bush" {
		t.Errorf("input = %q, want %q", got, "Hide on bush")
	}
}

func fullMatch() domain.Match {
	team := func(id int, prefix string) domain.Team {
		t := domain.Team{ID: id, Bans: []string{"Yasuo", "Zed"}}
		for i := 0; i < 5; i++ {
			t.Participants = append(t.Participants, domain.Participant{
				SummonerName: fmt.Sprintf("%s%d", prefix, i),
				ChampionName: "Ahri",
			})
		}
		return t
	}
	return domain.Match{
		ID:       "KR_1",
		GameMode: "CLASSIC",
		Duration: 30 * time.Minute,
		Teams:    []domain.Team{team(100, "Blue"), team(200, "Red")},
	}
}

func TestMatchDetailScrolls(t *testing.T) {
	result := &domain.SearchResult{
		Summoner: &domain.Summoner{Name: "Blue0", Region: domain.KR},
		Matches:  []domain.Match{fullMatch()},
	}
	m := newSizedModel(t, &fakeSearcher{results: map[string]*domain.SearchResult{"Blue0": result}}, 80, 24)

	m = typeText(t, m, "Blue0")
	m, done := press(t, m, keyOf(tea.KeyEnter))
	if done == nil {
		t.Fatal("enter did not start a search")
	}
	updated, _ := m.Update(*done)
	m = updated.(Model)

	m, _ = press(t, m, runes("d"))
	if m.state.Focus() != app.PaneMatchDetail {
		t.Fatalf("focus = %v, want match detail", m.state.Focus())
	}
	view := m.View()
	if !strings.Contains(view, "Red Team") {
		t.Errorf("View() missing the red team header")
	}
	if strings.Contains(view, "Red4") {
		t.Fatalf("last participant fits without scrolling; the pane is too tall for this check")
	}

	for i := 0; i < 10; i++ {
		m, _ = press(t, m, runes("j"))
	}
	if !strings.Contains(m.View(), "Red4") {
		t.Errorf("View() after scrolling misses the last participant")
	}
	if m.state.Cursor() != 0 {
		t.Errorf("cursor = %d, scrolling the detail must not move the list", m.state.Cursor())
	}

	for i := 0; i < 10; i++ {
		m, _ = press(t, m, runes("k"))
	}
	if strings.Contains(m.View(), "Red4") {
		t.Errorf("View() after scrolling back still shows the last participant")
	}
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"lol-watcher/internal/constants"
	"lol-watcher/internal/domain"
	"lol-watcher/internal/format"
	"strings"

	"github.com/rs/zerolog"
)

var ErrNoSuchGame = errors.New("no such game")

type Fetcher interface {
	Summoner(ctx context.Context, region domain.Region, name string) (*domain.Summoner, error)
	Ranks(ctx context.Context, summoner *domain.Summoner) ([]domain.RankEntry, error)
	Masteries(ctx context.Context, summoner *domain.Summoner, limit int) ([]domain.Mastery, error)
	Matches(ctx context.Context, summoner *domain.Summoner) ([]domain.Match, error)
}

type Dispatcher struct {
	fetcher Fetcher
	out     io.Writer
	logger  zerolog.Logger
}

func NewDispatcher(fetcher Fetcher, out io.Writer, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{fetcher: fetcher, out: out, logger: logger}
}

// Run executes every step for every name, one request at a time, and stops
// at the first error.
func (d *Dispatcher) Run(ctx context.Context, inv Invocation) error {
	steps := inv.Steps
	if len(steps) == 0 {
		steps = []Step{{Action: ActionSummoner}}
	}

	fmt.Fprintf(d.out, "players [%s] %s\n", inv.Region, strings.Join(inv.Names, " "))

	for _, name := range inv.Names {
		d.logger.Debug().Str("name", name).Str("region", inv.Region.Code()).Int("steps", len(steps)).Msg("running one-shot lookup")

		summoner, err := d.fetcher.Summoner(ctx, inv.Region, name)
		if err != nil {
			return err
		}
		for _, step := range steps {
			if err := d.runStep(ctx, summoner, step); err != nil {
				return fmt.Errorf("%s for %s: %w", step.Action, summoner.Name, err)
			}
		}
	}
	return nil
}

func (d *Dispatcher) runStep(ctx context.Context, summoner *domain.Summoner, step Step) error {
	var out format.Text

	switch step.Action {
	case ActionSummoner:
		out = format.SummonerView{Summoner: *summoner}.Format()

	case ActionRank:
		ranks, err := d.fetcher.Ranks(ctx, summoner)
		if err != nil {
			return err
		}
		out = format.NoData()
		if len(ranks) > 0 {
			views := make([]format.Formatter, len(ranks))
			for i, r := range ranks {
				views[i] = format.RankView{RankEntry: r}
			}
			out = format.Join(views...)
		}

	case ActionMastery:
		masteries, err := d.fetcher.Masteries(ctx, summoner, constants.MasteryLimit)
		if err != nil {
			return err
		}
		out = format.NoData()
		if len(masteries) > 0 {
			out = nil
			for _, m := range masteries {
				out = append(out, format.MasteryView{Mastery: m}.Format()...)
			}
		}

	case ActionGame:
		matches, err := d.fetcher.Matches(ctx, summoner)
		if err != nil {
			return err
		}
		if step.Index < 0 || step.Index >= len(matches) {
			return fmt.Errorf("%w at index %d (have %d)", ErrNoSuchGame, step.Index, len(matches))
		}
		m := matches[step.Index]
		out = append(format.Text{format.MatchTitle(m, summoner.Name)}, format.MatchView{Match: m}.Format()...)
	}

	_, err := fmt.Fprintln(d.out, out.Render())
	return err
}

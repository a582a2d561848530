package service

import (
	"context"
	"errors"
	"fmt"
	"lol-watcher/internal/api"
	"lol-watcher/internal/config"
	"lol-watcher/internal/constants"
	"lol-watcher/internal/domain"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSummonerNotFound = errors.New("no such summoner")
	ErrEmptyName        = errors.New("summoner name is empty")
)

// RiotAPI is the subset of the Riot client the service needs.
type RiotAPI interface {
	GetSummonerByName(ctx context.Context, platform, name string) (*api.SummonerDTO, error)
	GetLeagueEntries(ctx context.Context, platform, summonerID string) ([]api.LeagueEntryDTO, error)
	GetTopMasteries(ctx context.Context, platform, puuid string, count int) ([]api.ChampionMasteryDTO, error)
	GetMatchIDs(ctx context.Context, cluster, puuid string, count int) ([]string, error)
	GetMatch(ctx context.Context, cluster, matchID string) (*api.MatchDTO, error)
	RateLimit() api.RateLimitInfo
}

type SummonerService struct {
	riot   RiotAPI
	cfg    *config.Config
	logger zerolog.Logger
}

func NewSummonerService(riot RiotAPI, cfg *config.Config, logger zerolog.Logger) *SummonerService {
	return &SummonerService{riot: riot, cfg: cfg, logger: logger}
}

// Search resolves a summoner and collects rank, mastery and match history.
// Only the summoner lookup can fail the search; the other sections are left
// nil when their fetch fails.
func (s *SummonerService) Search(ctx context.Context, region domain.Region, name string) (*domain.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.SearchTimeout)
	defer cancel()

	searchID := uuid.New().String()
	logger := s.logger.With().Str("search_id", searchID).Logger()
	ctx = logger.WithContext(ctx)

	start := time.Now()
	logger.Info().Str("name", name).Str("region", region.Code()).Msg("search started")

	summoner, err := s.Summoner(ctx, region, name)
	if err != nil {
		return nil, err
	}

	result := &domain.SearchResult{Summoner: summoner}

	fetchRanks := func(ctx context.Context) {
		ranks, err := s.Ranks(ctx, summoner)
		if err != nil {
			logger.Warn().Err(err).Str("summoner_id", summoner.ID).Msg("failed to fetch rank, leaving section empty")
			return
		}
		result.Ranks = ranks
	}
	fetchMasteries := func(ctx context.Context) {
		masteries, err := s.Masteries(ctx, summoner, constants.MasteryLimit)
		if err != nil {
			logger.Warn().Err(err).Str("puuid", summoner.PUUID).Msg("failed to fetch masteries, leaving section empty")
			return
		}
		result.Masteries = masteries
	}
	fetchMatches := func(ctx context.Context) {
		matches, err := s.Matches(ctx, summoner)
		if err != nil {
			logger.Warn().Err(err).Str("puuid", summoner.PUUID).Msg("failed to fetch matches, leaving section empty")
			return
		}
		result.Matches = matches
	}

	if s.cfg.ConcurrentFetch {
		// every section writes its own field and never reports an error
		g, gCtx := errgroup.WithContext(ctx)
		for _, fetch := range []func(context.Context){fetchRanks, fetchMasteries, fetchMatches} {
			fetch := fetch
			g.Go(func() error {
				fetch(gCtx)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		fetchRanks(ctx)
		fetchMasteries(ctx)
		fetchMatches(ctx)
	}

	logger.Info().
		Str("puuid", summoner.PUUID).
		Int("ranks", len(result.Ranks)).
		Int("masteries", len(result.Masteries)).
		Int("matches", len(result.Matches)).
		Int("rate_remaining", s.riot.RateLimit().Remaining()).
		Dur("took", time.Since(start)).
		Msg("search completed")

	return result, nil
}

func (s *SummonerService) Summoner(ctx context.Context, region domain.Region, name string) (*domain.Summoner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	logger := s.loggerFrom(ctx)
	logger.Debug().Str("name", name).Str("platform", region.Platform()).Msg("getting summoner")

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	dto, err := s.riot.GetSummonerByName(apiCtx, region.Platform(), name)
	if errors.Is(err, api.ErrNotFound) {
		logger.Info().Str("name", name).Str("region", region.Code()).Msg("summoner not found")
		return nil, fmt.Errorf("%w: %s (%s)", ErrSummonerNotFound, name, region)
	}
	if err != nil {
		logger.Error().Err(err).Str("name", name).Msg("failed to fetch summoner")
		return nil, fmt.Errorf("failed to fetch summoner: %w", err)
	}

	return toSummoner(dto, region), nil
}

func (s *SummonerService) Ranks(ctx context.Context, summoner *domain.Summoner) ([]domain.RankEntry, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	entries, err := s.riot.GetLeagueEntries(apiCtx, summoner.Region.Platform(), summoner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch league entries: %w", err)
	}

	ranks := make([]domain.RankEntry, 0, len(entries))
	for _, e := range entries {
		ranks = append(ranks, toRankEntry(e))
	}
	return ranks, nil
}

// Masteries returns at most limit entries ordered by points, highest first.
func (s *SummonerService) Masteries(ctx context.Context, summoner *domain.Summoner, limit int) ([]domain.Mastery, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	dtos, err := s.riot.GetTopMasteries(apiCtx, summoner.Region.Platform(), summoner.PUUID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch masteries: %w", err)
	}

	masteries := make([]domain.Mastery, 0, len(dtos))
	for _, m := range dtos {
		masteries = append(masteries, toMastery(m))
	}
	slices.SortStableFunc(masteries, func(a, b domain.Mastery) int {
		switch {
		case a.Points > b.Points:
			return -1
		case a.Points < b.Points:
			return 1
		}
		return 0
	})
	if len(masteries) > limit {
		masteries = masteries[:limit]
	}
	return masteries, nil
}

// Matches fetches the id list and then each match in order. Matches that
// fail to load are skipped.
func (s *SummonerService) Matches(ctx context.Context, summoner *domain.Summoner) ([]domain.Match, error) {
	logger := s.loggerFrom(ctx)
	cluster := summoner.Region.Cluster()

	idsCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	ids, err := s.riot.GetMatchIDs(idsCtx, cluster, summoner.PUUID, s.cfg.MatchCount)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match ids: %w", err)
	}

	logger.Debug().Str("puuid", summoner.PUUID).Int("count", len(ids)).Msg("fetching matches")

	matches := make([]domain.Match, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		dto, err := s.riot.GetMatch(apiCtx, cluster, id)
		cancel()
		if err != nil {
			logger.Warn().Err(err).Str("match_id", id).Msg("failed to fetch match, skipping")
			continue
		}
		matches = append(matches, toMatch(dto))
	}
	return matches, nil
}

func (s *SummonerService) loggerFrom(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lol-watcher/internal/config"
	"lol-watcher/internal/constants"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/valyala/fasthttp"
)

const DefaultBaseURL = "https://%s.api.riotgames.com"

var ErrNotFound = errors.New("not found")

type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d", e.Code)
}

type RiotClient struct {
	apiKey  string
	baseURL string
	client  *fasthttp.Client

	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

type RateLimitInfo struct {
	// "limit:window" pairs, e.g. "20:1,100:120"
	AppLimit    string
	AppCount    string
	MethodLimit string
	MethodCount string

	// seconds, only set on 429
	RetryAfter int

	UpdatedAt time.Time
}

type Option func(*RiotClient)

// WithBaseURL overrides the host template; %s receives the routing value.
func WithBaseURL(tmpl string) Option {
	return func(c *RiotClient) { c.baseURL = tmpl }
}

func WithDial(dial fasthttp.DialFunc) Option {
	return func(c *RiotClient) { c.client.Dial = dial }
}

func New(apiKey string, opts ...Option) *RiotClient {
	c := &RiotClient{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     constants.HTTPMaxConnsPerHost,
			ReadTimeout:         constants.HTTPReadTimeout,
			WriteTimeout:        constants.HTTPWriteTimeout,
			MaxIdleConnDuration: constants.HTTPMaxIdleConnDuration,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func NewRiotClient(cfg *config.Config) *RiotClient {
	return New(cfg.RiotAPIKey)
}

func (c *RiotClient) RateLimit() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

// Remaining returns the smallest number of calls left across the app
// rate-limit windows, or -1 when no headers have been seen yet.
func (r RateLimitInfo) Remaining() int {
	limits := parseWindows(r.AppLimit)
	counts := parseWindows(r.AppCount)
	if len(limits) == 0 {
		return -1
	}

	remaining := -1
	for window, limit := range limits {
		left := limit - counts[window]
		if left < 0 {
			left = 0
		}
		if remaining == -1 || left < remaining {
			remaining = left
		}
	}
	return remaining
}

// parseWindows turns "20:1,100:120" into {1: 20, 120: 100}.
func parseWindows(s string) map[int]int {
	out := make(map[int]int)
	for _, pair := range strings.Split(s, ",") {
		n, w, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			continue
		}
		num, err1 := strconv.Atoi(n)
		window, err2 := strconv.Atoi(w)
		if err1 != nil || err2 != nil {
			continue
		}
		out[window] = num
	}
	return out
}

func (c *RiotClient) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if v := string(resp.Header.Peek("X-App-Rate-Limit")); v != "" {
		c.rateLimit.AppLimit = v
	}
	if v := string(resp.Header.Peek("X-App-Rate-Limit-Count")); v != "" {
		c.rateLimit.AppCount = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit")); v != "" {
		c.rateLimit.MethodLimit = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit-Count")); v != "" {
		c.rateLimit.MethodCount = v
	}
	c.rateLimit.RetryAfter = 0
	if v := string(resp.Header.Peek("Retry-After")); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.rateLimit.RetryAfter = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

func (c *RiotClient) endpoint(route, path string, args ...any) string {
	return fmt.Sprintf(c.baseURL, route) + fmt.Sprintf(path, args...)
}

func (c *RiotClient) GetSummonerByName(ctx context.Context, platform, name string) (*SummonerDTO, error) {
	u := c.endpoint(platform, "/lol/summoner/v4/summoners/by-name/%s", url.PathEscape(name))
	return doRequest[SummonerDTO](ctx, c, u)
}

func (c *RiotClient) GetLeagueEntries(ctx context.Context, platform, summonerID string) ([]LeagueEntryDTO, error) {
	u := c.endpoint(platform, "/lol/league/v4/entries/by-summoner/%s", url.PathEscape(summonerID))
	entries, err := doRequest[[]LeagueEntryDTO](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

func (c *RiotClient) GetTopMasteries(ctx context.Context, platform, puuid string, count int) ([]ChampionMasteryDTO, error) {
	u := c.endpoint(platform, "/lol/champion-mastery/v4/champion-masteries/by-puuid/%s/top?count=%d", url.PathEscape(puuid), count)
	masteries, err := doRequest[[]ChampionMasteryDTO](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *masteries, nil
}

func (c *RiotClient) GetMatchIDs(ctx context.Context, cluster, puuid string, count int) ([]string, error) {
	u := c.endpoint(cluster, "/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d", url.PathEscape(puuid), count)
	ids, err := doRequest[[]string](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

func (c *RiotClient) GetMatch(ctx context.Context, cluster, matchID string) (*MatchDTO, error) {
	u := c.endpoint(cluster, "/lol/match/v5/matches/%s", url.PathEscape(matchID))
	return doRequest[MatchDTO](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *RiotClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)
	req.Header.Set("Accept", "application/json")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	client.updateRateLimit(resp)

	switch resp.StatusCode() {
	case fasthttp.StatusOK:
	case fasthttp.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, &StatusError{Code: resp.StatusCode()}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

package domain

import "time"

type Summoner struct {
	ID            string // encrypted summoner id
	PUUID         string
	Name          string
	Level         int64
	ProfileIconID int
	Region        Region
}

type RankEntry struct {
	QueueType    string // "RANKED_SOLO_5x5", "RANKED_FLEX_SR"
	Tier         string // empty when unranked
	Division     string // "I".."IV"
	LeaguePoints int
	Wins         int
	Losses       int
	HotStreak    bool
	SummonerName string
}

type Mastery struct {
	ChampionID   int64
	ChampionName string
	Points       int64
	Level        int
}

type Participant struct {
	PUUID        string
	SummonerName string
	ChampionName string
	Position     string // TOP, JUNGLE, MIDDLE, BOTTOM, UTILITY
	Kills        int
	Deaths       int
	Assists      int
	Minions      int
	Win          bool
}

type Team struct {
	ID           int    // 100 blue, 200 red
	Win          bool
	Bans         []string
	Participants []Participant
}

type Match struct {
	ID       string
	GameMode string
	Started  time.Time
	Duration time.Duration
	Teams    []Team
}

// Participants returns every participant of both teams in team order.
func (m Match) Participants() []Participant {
	var out []Participant
	for _, t := range m.Teams {
		out = append(out, t.Participants...)
	}
	return out
}

// SearchResult is everything known about one looked-up summoner. A nil
// section means there is no data for it.
type SearchResult struct {
	Summoner  *Summoner
	Ranks     []RankEntry
	Masteries []Mastery
	Matches   []Match
}

package service

import (
	"lol-watcher/internal/api"
	"lol-watcher/internal/constants"
	"lol-watcher/internal/domain"
	"time"
)

func toSummoner(dto *api.SummonerDTO, region domain.Region) *domain.Summoner {
	return &domain.Summoner{
		ID:            dto.ID,
		PUUID:         dto.PUUID,
		Name:          dto.Name,
		Level:         dto.SummonerLevel,
		ProfileIconID: dto.ProfileIconID,
		Region:        region,
	}
}

func toRankEntry(e api.LeagueEntryDTO) domain.RankEntry {
	return domain.RankEntry{
		QueueType:    e.QueueType,
		Tier:         e.Tier,
		Division:     e.Rank,
		LeaguePoints: e.LeaguePoints,
		Wins:         e.Wins,
		Losses:       e.Losses,
		HotStreak:    e.HotStreak,
		SummonerName: e.SummonerName,
	}
}

func toMastery(m api.ChampionMasteryDTO) domain.Mastery {
	return domain.Mastery{
		ChampionID:   m.ChampionID,
		ChampionName: api.ChampionName(m.ChampionID),
		Points:       m.ChampionPoints,
		Level:        m.ChampionLevel,
	}
}

func toMatch(dto *api.MatchDTO) domain.Match {
	m := domain.Match{
		ID:       dto.Metadata.MatchID,
		GameMode: dto.Info.GameMode,
		Duration: time.Duration(dto.Info.GameDuration) * time.Second,
	}
	if dto.Info.GameStartTimestamp > 0 {
		m.Started = time.UnixMilli(dto.Info.GameStartTimestamp)
	}

	// blue side first regardless of payload order
	for _, teamID := range []int{constants.TeamBlueID, constants.TeamRedID} {
		team := domain.Team{ID: teamID}
		found := false
		for _, t := range dto.Info.Teams {
			if t.TeamID != teamID {
				continue
			}
			found = true
			team.Win = t.Win
			for _, b := range t.Bans {
				// -1 marks a skipped ban
				if b.ChampionID <= 0 {
					continue
				}
				team.Bans = append(team.Bans, api.ChampionName(b.ChampionID))
			}
		}
		for _, p := range dto.Info.Participants {
			if p.TeamID != teamID {
				continue
			}
			found = true
			team.Participants = append(team.Participants, toParticipant(p))
		}
		if found {
			m.Teams = append(m.Teams, team)
		}
	}
	return m
}

func toParticipant(p api.ParticipantDTO) domain.Participant {
	name := p.SummonerName
	if name == "" {
		name = p.RiotIDGameName
	}
	position := p.TeamPosition
	if position == "" {
		position = p.IndividualPosition
	}
	champion := p.ChampionName
	if champion == "" {
		champion = api.ChampionName(p.ChampionID)
	}
	return domain.Participant{
		PUUID:        p.PUUID,
		SummonerName: name,
		ChampionName: champion,
		Position:     position,
		Kills:        p.Kills,
		Deaths:       p.Deaths,
		Assists:      p.Assists,
		Minions:      p.TotalMinionsKilled,
		Win:          p.Win,
	}
}

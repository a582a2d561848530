package api

type SummonerDTO struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int64  `json:"summonerLevel"`
	RevisionDate  int64  `json:"revisionDate"`
}

type LeagueEntryDTO struct {
	LeagueID     string `json:"leagueId"`
	SummonerID   string `json:"summonerId"`
	SummonerName string `json:"summonerName"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
	Inactive     bool   `json:"inactive"`
}

type ChampionMasteryDTO struct {
	PUUID          string `json:"puuid"`
	ChampionID     int64  `json:"championId"`
	ChampionLevel  int    `json:"championLevel"`
	ChampionPoints int64  `json:"championPoints"`
	LastPlayTime   int64  `json:"lastPlayTime"`
}

type MatchDTO struct {
	Metadata struct {
		MatchID      string   `json:"matchId"`
		Participants []string `json:"participants"`
	} `json:"metadata"`
	Info MatchInfoDTO `json:"info"`
}

type MatchInfoDTO struct {
	GameCreation       int64            `json:"gameCreation"`
	GameStartTimestamp int64            `json:"gameStartTimestamp"`
	GameDuration       int64            `json:"gameDuration"` // seconds
	GameMode           string           `json:"gameMode"`
	QueueID            int              `json:"queueId"`
	Participants       []ParticipantDTO `json:"participants"`
	Teams              []TeamDTO        `json:"teams"`
}

type ParticipantDTO struct {
	PUUID                string `json:"puuid"`
	SummonerName         string `json:"summonerName"`
	RiotIDGameName       string `json:"riotIdGameName"`
	ChampionID           int64  `json:"championId"`
	ChampionName         string `json:"championName"`
	TeamID               int    `json:"teamId"`
	TeamPosition         string `json:"teamPosition"`
	IndividualPosition   string `json:"individualPosition"`
	Kills                int    `json:"kills"`
	Deaths               int    `json:"deaths"`
	Assists              int    `json:"assists"`
	TotalMinionsKilled   int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled int    `json:"neutralMinionsKilled"`
	Win                  bool   `json:"win"`
}

type TeamDTO struct {
	TeamID int  `json:"teamId"`
	Win    bool `json:"win"`
	Bans   []struct {
		ChampionID int64 `json:"championId"`
		PickTurn   int   `json:"pickTurn"`
	} `json:"bans"`
}

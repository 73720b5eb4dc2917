package api

// AccountDTO is the account-v1 by-riot-id response.
type AccountDTO struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// SummonerDTO is the summoner-v4 response.
type SummonerDTO struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntryDTO is one element of the league-v4 entries response.
type LeagueEntryDTO struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
}

// Queue type tags in league entries.
const (
	QueueSolo = "RANKED_SOLO_5x5"
	QueueFlex = "RANKED_FLEX_SR"
)

// MatchDTO is the match-v5 detail response, reduced to the fields the
// profile services consume.
type MatchDTO struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata holds match identity fields.
type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// MatchInfo holds gameplay fields of a match.
type MatchInfo struct {
	GameCreation int64            `json:"gameCreation"`
	GameDuration int64            `json:"gameDuration"`
	GameMode     string           `json:"gameMode"`
	QueueID      int              `json:"queueId"`
	Participants []ParticipantDTO `json:"participants"`
}

// ParticipantDTO is one player's record inside a match. The upstream wire
// format names the item slots individually.
type ParticipantDTO struct {
	PUUID        string `json:"puuid"`
	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	ChampLevel   int    `json:"champLevel"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"`

	TotalDamageDealtToChampions int  `json:"totalDamageDealtToChampions"`
	TotalMinionsKilled          int  `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int  `json:"neutralMinionsKilled"`
	GoldEarned                  int  `json:"goldEarned"`
	Win                         bool `json:"win"`
}

// Items gathers the named item slots into an indexed array.
func (p *ParticipantDTO) Items() [7]int {
	return [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

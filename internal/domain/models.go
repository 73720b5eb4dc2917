package domain

import (
	"time"
)

// ResolvedPlayer is the stable identity obtained after resolving a
// user-supplied handle. It is immutable once produced; every downstream
// lookup keys off SummonerID or PUUID.
type ResolvedPlayer struct {
	SummonerID  string `json:"summonerId"`
	PUUID       string `json:"puuid"`
	DisplayName string `json:"displayName"`
	Level       int    `json:"level"`
	IconID      int    `json:"iconId"`
}

// RankedStanding is a player's placement in a single ranked queue.
type RankedStanding struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Division     string `json:"division"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
}

// ItemSlots is the number of item slots on a participant, trinket included.
const ItemSlots = 7

// ParticipantStats is the slice of a match record belonging to the resolved
// player. Items are an indexed array rather than seven named fields.
type ParticipantStats struct {
	ChampionID        int            `json:"championId"`
	ChampionName      string         `json:"championName"`
	Kills             int            `json:"kills"`
	Deaths            int            `json:"deaths"`
	Assists           int            `json:"assists"`
	ChampLevel        int            `json:"champLevel"`
	Items             [ItemSlots]int `json:"items"`
	DamageToChampions int            `json:"damageToChampions"`
	MinionsKilled     int            `json:"minionsKilled"`
	GoldEarned        int            `json:"goldEarned"`
	Win               bool           `json:"win"`
}

// MatchSummary is one entry of a player's match history.
type MatchSummary struct {
	MatchID         string           `json:"matchId"`
	StartTimestamp  int64            `json:"startTimestamp"`
	DurationSeconds int64            `json:"durationSeconds"`
	QueueID         int              `json:"queueId"`
	GameMode        string           `json:"gameMode"`
	Stats           ParticipantStats `json:"stats"`
}

// PlayerProfile is the composite the aggregator assembles per request. It is
// never persisted; wins/losses/winrate are computed over the matches that
// were actually fetched, which can be fewer than requested.
type PlayerProfile struct {
	Resolved       ResolvedPlayer  `json:"resolved"`
	Solo           *RankedStanding `json:"rankedSolo"`
	Flex           *RankedStanding `json:"rankedFlex"`
	Matches        []MatchSummary  `json:"matches"`
	TotalGames     int             `json:"totalGames"`
	Wins           int             `json:"wins"`
	Losses         int             `json:"losses"`
	WinratePercent float64         `json:"winratePercent"`
}

// LeaderboardEntry is one curated row of the leaderboard file. Entries are
// created and deleted, never edited in place.
type LeaderboardEntry struct {
	ID           string `json:"id"`
	SummonerName string `json:"summonerName"`
	Region       string `json:"region"`
	Notes        string `json:"notes,omitempty"`
	Featured     bool   `json:"featured"`
}

// Role values for users.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a local account able to manage the leaderboard.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user may mutate the leaderboard.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

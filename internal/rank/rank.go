// Package rank orders ranked standings for leaderboard display.
package rank

import (
	"github.com/oCowley/solo-boom/internal/domain"
)

var tierValues = map[string]int{
	"IRON":        1,
	"BRONZE":      2,
	"SILVER":      3,
	"GOLD":        4,
	"PLATINUM":    5,
	"EMERALD":     6,
	"DIAMOND":     7,
	"MASTER":      8,
	"GRANDMASTER": 9,
	"CHALLENGER":  10,
}

var divisionValues = map[string]int{
	"IV":  1,
	"III": 2,
	"II":  3,
	"I":   4,
}

// TierValue returns the ordering weight of a tier name, 0 when unknown.
func TierValue(tier string) int {
	return tierValues[tier]
}

// DivisionValue returns the ordering weight of a division, 0 when unknown.
func DivisionValue(division string) int {
	return divisionValues[division]
}

// Compare orders two Solo/Duo standings for display: higher tier first, then
// higher division, then more league points. Unranked (nil) sorts last.
// Returns a negative value when a ranks above b, positive when below, 0 when
// equal.
func Compare(a, b *domain.RankedStanding) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return 1
	}
	if b == nil {
		return -1
	}

	if ta, tb := TierValue(a.Tier), TierValue(b.Tier); ta != tb {
		return tb - ta
	}
	if da, db := DivisionValue(a.Division), DivisionValue(b.Division); da != db {
		return db - da
	}
	return b.LeaguePoints - a.LeaguePoints
}

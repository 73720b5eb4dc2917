// Package regions maps platform codes to the continental routing clusters
// used by the account and match endpoints. The split between platform host
// and cluster host is a fixed contract of the upstream API.
package regions

import (
	"strings"

	"github.com/oCowley/solo-boom/internal/domain"
)

type (
	// Region is a platform code such as "br1" or "kr".
	Region string

	// Cluster is a continental routing value such as "americas".
	Cluster string
)

// Routing clusters.
const (
	Americas Cluster = "americas"
	Europe   Cluster = "europe"
	Asia     Cluster = "asia"
)

// Supported platform codes.
const (
	BR1  Region = "br1"
	EUN1 Region = "eun1"
	EUW1 Region = "euw1"
	JP1  Region = "jp1"
	KR   Region = "kr"
	LA1  Region = "la1"
	LA2  Region = "la2"
	NA1  Region = "na1"
	OC1  Region = "oc1"
	TR1  Region = "tr1"
	RU   Region = "ru"
)

// clusterByRegion is the static routing table. oc1 routes through asia.
var clusterByRegion = map[Region]Cluster{
	BR1:  Americas,
	EUN1: Europe,
	EUW1: Europe,
	JP1:  Asia,
	KR:   Asia,
	LA1:  Americas,
	LA2:  Americas,
	NA1:  Americas,
	OC1:  Asia,
	TR1:  Europe,
	RU:   Europe,
}

// Parse validates a platform code, case-insensitively.
func Parse(raw string) (Region, error) {
	region := Region(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := clusterByRegion[region]; !ok {
		return "", domain.ErrInvalidRegion
	}
	return region, nil
}

// Cluster returns the routing cluster serving account and match requests
// for the given platform.
func (r Region) Cluster() Cluster {
	return clusterByRegion[r]
}

// All returns every supported platform code.
func All() []Region {
	all := make([]Region, 0, len(clusterByRegion))
	for region := range clusterByRegion {
		all = append(all, region)
	}
	return all
}

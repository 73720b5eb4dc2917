package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oCowley/solo-boom/internal/domain"
)

func TestClusterTable(t *testing.T) {
	t.Parallel()

	// The routing table is a fixed upstream contract, oc1→asia included.
	expected := map[Region]Cluster{
		BR1:  Americas,
		LA1:  Americas,
		LA2:  Americas,
		NA1:  Americas,
		EUN1: Europe,
		EUW1: Europe,
		TR1:  Europe,
		RU:   Europe,
		JP1:  Asia,
		KR:   Asia,
		OC1:  Asia,
	}

	assert.Len(t, All(), len(expected))
	for region, cluster := range expected {
		assert.Equal(t, cluster, region.Cluster(), "region %s", region)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	region, err := Parse("KR")
	require.NoError(t, err)
	assert.Equal(t, KR, region)

	region, err = Parse("  br1 ")
	require.NoError(t, err)
	assert.Equal(t, BR1, region)

	_, err = Parse("moon1")
	assert.ErrorIs(t, err, domain.ErrInvalidRegion)

	_, err = Parse("")
	assert.ErrorIs(t, err, domain.ErrInvalidRegion)
}

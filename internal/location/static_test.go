package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver_KnownZip(t *testing.T) {
	resolver := NewStaticResolver()

	loc, found := resolver.Resolve("78701")
	require.True(t, found)
	require.NotNil(t, loc)
	assert.Equal(t, "Austin", loc.City)
	assert.Equal(t, "Travis County", loc.CountyName)
	assert.Equal(t, "48453", loc.CountyID)
	assert.Equal(t, "TX", loc.StateCode)
	assert.Equal(t, "Texas", loc.StateName)
}

func TestStaticResolver_UnknownZip(t *testing.T) {
	resolver := NewStaticResolver()

	loc, found := resolver.Resolve("99999")
	assert.False(t, found)
	assert.Nil(t, loc)
}

func TestStaticResolver_Deterministic(t *testing.T) {
	resolver := NewStaticResolver()

	first, foundFirst := resolver.Resolve("90012")
	second, foundSecond := resolver.Resolve("90012")
	require.True(t, foundFirst)
	require.True(t, foundSecond)
	assert.Equal(t, *first, *second)
}

func TestStaticResolver_ReturnsCopy(t *testing.T) {
	resolver := NewStaticResolver()

	loc, found := resolver.Resolve("77002")
	require.True(t, found)
	loc.City = "Mutated"

	fresh, found := resolver.Resolve("77002")
	require.True(t, found)
	assert.Equal(t, "Houston", fresh.City)
}

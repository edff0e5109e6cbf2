package services

import (
	"testing"

	"astra_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constellationFixture() []models.FriendProfile {
	return []models.FriendProfile{
		{ID: 1, Name: "Jordan Rivera", SunSign: "Pisces", MoonSign: "Leo", RisingSign: "Virgo", Element: "Water", Score: 91, MutualPlanets: []string{"Venus", "Neptune"}},
		{ID: 2, Name: "Maya Chen", SunSign: "Aries", MoonSign: "Taurus", RisingSign: "Libra", Element: "Fire", Score: 78, MutualPlanets: []string{"Mars"}},
		{ID: 3, Name: "Sol Ortega", SunSign: "Pisces", MoonSign: "Scorpio", RisingSign: "Gemini", Element: "Water", Score: 87, MutualPlanets: []string{"Neptune"}},
		{ID: 4, Name: "Iris Okafor", SunSign: "Capricorn", MoonSign: "Leo", RisingSign: "Aquarius", Element: "Earth", Score: 64, MutualPlanets: []string{"Saturn"}},
	}
}

func sharesAttribute(a, b models.FriendProfile) bool {
	if a.SunSign == b.SunSign || a.MoonSign == b.MoonSign || a.RisingSign == b.RisingSign || a.Element == b.Element {
		return true
	}
	for _, pa := range a.MutualPlanets {
		for _, pb := range b.MutualPlanets {
			if pa == pb {
				return true
			}
		}
	}
	return false
}

func TestBuildConnectionsNeverProducesSelfEdges(t *testing.T) {
	cs := &ConnectionService{}
	edges := cs.BuildConnections(constellationFixture())

	for _, edge := range edges {
		assert.NotEqual(t, edge.FriendA, edge.FriendB)
	}
}

func TestBuildConnectionsEdgesShareAnAttribute(t *testing.T) {
	friends := constellationFixture()
	cs := &ConnectionService{}

	byID := map[int]models.FriendProfile{}
	for _, f := range friends {
		byID[f.ID] = f
	}

	edges := cs.BuildConnections(friends)
	require.NotEmpty(t, edges)

	for _, edge := range edges {
		a, b := byID[edge.FriendA], byID[edge.FriendB]
		assert.True(t, sharesAttribute(a, b),
			"edge (%d,%d) connects friends with no shared attribute", edge.FriendA, edge.FriendB)
	}
}

func TestBuildConnectionsFirstRuleWins(t *testing.T) {
	// Both the sun sign and the element match; the earlier rule must be
	// recorded as the classification.
	friends := []models.FriendProfile{
		{ID: 1, SunSign: "Leo", Element: "Fire"},
		{ID: 2, SunSign: "Leo", Element: "Fire"},
	}

	cs := &ConnectionService{}
	edges := cs.BuildConnections(friends)

	require.Len(t, edges, 1)
	assert.Equal(t, models.TieSunSign, edges[0].Tie)
}

func TestBuildConnectionsMoonBeforeElement(t *testing.T) {
	friends := []models.FriendProfile{
		{ID: 1, SunSign: "Leo", MoonSign: "Virgo", Element: "Air"},
		{ID: 2, SunSign: "Aries", MoonSign: "Virgo", Element: "Air"},
	}

	cs := &ConnectionService{}
	edges := cs.BuildConnections(friends)

	require.Len(t, edges, 1)
	assert.Equal(t, models.TieMoonSign, edges[0].Tie)
}

func TestBuildConnectionsMutualPlanetIsLastResort(t *testing.T) {
	friends := []models.FriendProfile{
		{ID: 1, SunSign: "Leo", MoonSign: "Virgo", RisingSign: "Libra", Element: "Fire", MutualPlanets: []string{"Mercury", "Venus"}},
		{ID: 2, SunSign: "Aries", MoonSign: "Cancer", RisingSign: "Gemini", Element: "Water", MutualPlanets: []string{"Venus"}},
	}

	cs := &ConnectionService{}
	edges := cs.BuildConnections(friends)

	require.Len(t, edges, 1)
	assert.Equal(t, models.TieMutualPlanet, edges[0].Tie)
}

func TestBuildConnectionsScenario(t *testing.T) {
	friends := []models.FriendProfile{
		{ID: 1, SunSign: "Pisces", Score: 91},
		{ID: 2, SunSign: "Aries", Score: 78},
		{ID: 3, SunSign: "Pisces", Score: 87},
	}

	cs := &ConnectionService{}
	edges := cs.BuildConnections(friends)

	require.Len(t, edges, 1)
	assert.Equal(t, 1, edges[0].FriendA)
	assert.Equal(t, 3, edges[0].FriendB)
	assert.Equal(t, models.TieSunSign, edges[0].Tie)
}

func TestBuildConnectionsEmptyAndSingleInput(t *testing.T) {
	cs := &ConnectionService{}

	assert.Empty(t, cs.BuildConnections(nil))
	assert.Empty(t, cs.BuildConnections([]models.FriendProfile{}))
	assert.Empty(t, cs.BuildConnections([]models.FriendProfile{{ID: 1, SunSign: "Leo"}}))
}

func TestConnectedFriendsNoDuplicates(t *testing.T) {
	friends := constellationFixture()
	cs := &ConnectionService{}
	edges := cs.BuildConnections(friends)

	connected := cs.ConnectedFriends(friends[0], edges, friends)

	seen := map[int]bool{}
	for _, f := range connected {
		assert.False(t, seen[f.ID], "friend %d returned twice", f.ID)
		seen[f.ID] = true
		assert.NotEqual(t, friends[0].ID, f.ID)
	}
}

func TestConnectedFriendsFollowsEdgeDiscoveryOrder(t *testing.T) {
	friends := []models.FriendProfile{
		{ID: 10, SunSign: "Leo"},
		{ID: 20, SunSign: "Virgo"},
		{ID: 30, SunSign: "Leo"},
		{ID: 40, SunSign: "Leo"},
	}

	cs := &ConnectionService{}
	edges := cs.BuildConnections(friends)
	connected := cs.ConnectedFriends(friends[0], edges, friends)

	require.Len(t, connected, 2)
	assert.Equal(t, 30, connected[0].ID)
	assert.Equal(t, 40, connected[1].ID)
}

func TestConnectedFriendsUnknownTargetIsEmpty(t *testing.T) {
	friends := constellationFixture()
	cs := &ConnectionService{}
	edges := cs.BuildConnections(friends)

	stranger := models.FriendProfile{ID: 999, SunSign: "Pisces"}
	assert.Empty(t, cs.ConnectedFriends(stranger, edges, friends))
}

func TestConnectedFriendsAgainstEmptyGraph(t *testing.T) {
	cs := &ConnectionService{}
	edges := cs.BuildConnections(nil)

	assert.Empty(t, edges)
	assert.Empty(t, cs.ConnectedFriends(models.FriendProfile{ID: 1}, edges, nil))
}

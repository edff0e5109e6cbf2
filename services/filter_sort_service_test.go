package services

import (
	"testing"
	"time"

	"astra_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func friendListFixture() []models.FriendProfile {
	base := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	return []models.FriendProfile{
		{ID: 1, Name: "Jordan Rivera", SunSign: "Pisces", Score: 91, LastAlignedAt: base.Add(-2 * time.Hour)},
		{ID: 2, Name: "Maya Chen", SunSign: "Aries", Score: 78, LastAlignedAt: base.Add(-26 * time.Hour)},
		{ID: 3, Name: "Sol Ortega", SunSign: "Pisces", Score: 87, LastAlignedAt: base.Add(-72 * time.Hour)},
	}
}

func idsOf(items []models.FriendProfile) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func TestApplyCompatibleSortScenario(t *testing.T) {
	fs := &FilterSortService{}
	result := fs.Apply(friendListFixture(), "", models.SortCompatible)

	assert.Equal(t, []int{1, 3, 2}, idsOf(result))
}

func TestApplyQueryScenario(t *testing.T) {
	fs := &FilterSortService{}
	result := fs.Apply(friendListFixture(), "jordan", models.SortAll)

	require.Len(t, result, 1)
	assert.Equal(t, "Jordan Rivera", result[0].Name)
}

func TestApplyQueryIsCaseInsensitiveSubstring(t *testing.T) {
	fs := &FilterSortService{}

	result := fs.Apply(friendListFixture(), "RIVER", models.SortAll)
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)

	assert.Empty(t, fs.Apply(friendListFixture(), "nobody", models.SortAll))
}

func TestApplyRecentSortUsesTimestamps(t *testing.T) {
	fs := &FilterSortService{}
	result := fs.Apply(friendListFixture(), "", models.SortRecent)

	assert.Equal(t, []int{1, 2, 3}, idsOf(result))
	for i := 1; i < len(result); i++ {
		assert.False(t, result[i].LastAlignedAt.After(result[i-1].LastAlignedAt))
	}
}

func TestApplyAllPreservesInputOrder(t *testing.T) {
	fs := &FilterSortService{}
	items := friendListFixture()

	result := fs.Apply(items, "", models.SortAll)
	assert.Equal(t, idsOf(items), idsOf(result))
}

func TestApplyIsPure(t *testing.T) {
	fs := &FilterSortService{}
	items := friendListFixture()
	snapshot := make([]models.FriendProfile, len(items))
	copy(snapshot, items)

	first := fs.Apply(items, "a", models.SortCompatible)
	second := fs.Apply(items, "a", models.SortCompatible)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, items, "input list must not be mutated")
}

func TestApplyStableForScoreTies(t *testing.T) {
	items := []models.FriendProfile{
		{ID: 1, Name: "Jordan Rivera", Score: 80},
		{ID: 2, Name: "Maya Chen", Score: 80},
		{ID: 3, Name: "Sol Ortega", Score: 95},
		{ID: 4, Name: "Iris Okafor", Score: 80},
	}

	fs := &FilterSortService{}
	result := fs.Apply(items, "", models.SortCompatible)

	assert.Equal(t, []int{3, 1, 2, 4}, idsOf(result))
}

func TestApplyEmptyInput(t *testing.T) {
	fs := &FilterSortService{}

	assert.Empty(t, fs.Apply(nil, "", models.SortCompatible))
	assert.Empty(t, fs.Apply([]models.FriendProfile{}, "query", models.SortRecent))
}

func TestApplyUnknownModeBehavesLikeAll(t *testing.T) {
	fs := &FilterSortService{}
	items := friendListFixture()

	result := fs.Apply(items, "", models.SortMode("bogus"))
	assert.Equal(t, idsOf(items), idsOf(result))
}

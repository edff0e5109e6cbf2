package services

import (
	"sort"
	"strings"

	"astra_server/models"
)

// FilterSortService narrows and orders a friend list for rendering. Apply is
// pure: the input slice is never mutated and the same inputs always produce
// the same output.
type FilterSortService struct{}

// Apply filters items by a case-insensitive substring match on the display
// name (an empty query keeps everything), then orders the result by the
// requested mode:
//
//	compatible — descending compatibility score, ties keep input order
//	recent     — most recently aligned first, ties keep input order
//	all        — input order preserved
//
// An unrecognized mode behaves like "all".
func (fs *FilterSortService) Apply(items []models.FriendProfile, query string, mode models.SortMode) []models.FriendProfile {
	q := strings.ToLower(strings.TrimSpace(query))

	result := make([]models.FriendProfile, 0, len(items))
	for _, item := range items {
		if q == "" || strings.Contains(strings.ToLower(item.Name), q) {
			result = append(result, item)
		}
	}

	switch mode {
	case models.SortCompatible:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Score > result[j].Score
		})
	case models.SortRecent:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].LastAlignedAt.After(result[j].LastAlignedAt)
		})
	}

	return result
}

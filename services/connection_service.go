package services

import (
	"astra_server/models"
)

// ConnectionService derives the friend-to-friend connection graph shown as
// the constellation view. Edges are recomputed on every call; nothing here
// touches storage or the network.
type ConnectionService struct{}

// BuildConnections scans every unordered pair of friends and produces an edge
// for each pair that shares a qualifying attribute. Tie rules are tested in a
// fixed priority order (sun sign, moon sign, rising sign, element, mutual
// planet) and the first matching rule is the edge's classification, even when
// several rules would match. The scan is O(N²); friend lists are tens of
// entries, not thousands.
//
// Friend ids are expected to be unique; duplicate ids are a caller error and
// are not deduplicated here.
func (cs *ConnectionService) BuildConnections(friends []models.FriendProfile) []models.ConnectionEdge {
	edges := []models.ConnectionEdge{}

	for i := 0; i < len(friends); i++ {
		for j := i + 1; j < len(friends); j++ {
			a, b := friends[i], friends[j]
			if a.ID == b.ID {
				continue // never emit a self-edge
			}

			tie, ok := classifyTie(a, b)
			if !ok {
				continue
			}

			edges = append(edges, models.ConnectionEdge{
				FriendA: a.ID,
				FriendB: b.ID,
				Tie:     tie,
			})
		}
	}

	return edges
}

// ConnectedFriends returns the profiles that share an edge with the target
// friend, resolved by id against allFriends, in edge-discovery order. An
// unknown target id yields an empty list rather than an error.
func (cs *ConnectionService) ConnectedFriends(
	friend models.FriendProfile,
	edges []models.ConnectionEdge,
	allFriends []models.FriendProfile,
) []models.FriendProfile {
	byID := make(map[int]models.FriendProfile, len(allFriends))
	for _, f := range allFriends {
		byID[f.ID] = f
	}

	connected := []models.FriendProfile{}
	seen := map[int]bool{}

	for _, edge := range edges {
		var otherID int
		switch friend.ID {
		case edge.FriendA:
			otherID = edge.FriendB
		case edge.FriendB:
			otherID = edge.FriendA
		default:
			continue
		}

		if seen[otherID] {
			continue
		}
		seen[otherID] = true

		if profile, ok := byID[otherID]; ok {
			connected = append(connected, profile)
		}
	}

	return connected
}

// classifyTie tests the tie rules in priority order and returns the first one
// that matches
func classifyTie(a, b models.FriendProfile) (string, bool) {
	switch {
	case a.SunSign != "" && a.SunSign == b.SunSign:
		return models.TieSunSign, true
	case a.MoonSign != "" && a.MoonSign == b.MoonSign:
		return models.TieMoonSign, true
	case a.RisingSign != "" && a.RisingSign == b.RisingSign:
		return models.TieRisingSign, true
	case a.Element != "" && a.Element == b.Element:
		return models.TieElement, true
	case sharesPlanet(a.MutualPlanets, b.MutualPlanets):
		return models.TieMutualPlanet, true
	}
	return "", false
}

func sharesPlanet(planetsA, planetsB []string) bool {
	if len(planetsA) == 0 || len(planetsB) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(planetsA))
	for _, p := range planetsA {
		set[p] = struct{}{}
	}
	for _, p := range planetsB {
		if _, ok := set[p]; ok {
			return true
		}
	}
	return false
}

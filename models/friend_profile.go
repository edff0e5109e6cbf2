package models

import "time"

// FriendProfile defines the structure for a connection's astrological and social profile
type FriendProfile struct {
	UserID            string    `json:"-" dynamodbav:"userId"`
	ID                int       `json:"id" dynamodbav:"id"`
	Name              string    `json:"name" dynamodbav:"name"`
	Handle            string    `json:"handle" dynamodbav:"handle"`
	SunSign           string    `json:"sunSign" dynamodbav:"sunSign"`
	MoonSign          string    `json:"moonSign" dynamodbav:"moonSign"`
	RisingSign        string    `json:"risingSign" dynamodbav:"risingSign"`
	Element           string    `json:"element" dynamodbav:"element"`
	Modality          string    `json:"modality" dynamodbav:"modality"`
	DominantFrequency string    `json:"dominantFrequency" dynamodbav:"dominantFrequency"`
	Score             int       `json:"score" dynamodbav:"score"`
	Online            bool      `json:"online" dynamodbav:"online"`
	LastAlignedAt     time.Time `json:"lastAlignedAt" dynamodbav:"lastAlignedAt"`
	MutualPlanets     []string  `json:"mutualPlanets" dynamodbav:"mutualPlanets,omitempty"`
}

// FriendProfilesTable is the DynamoDB table name for friend profiles
const FriendProfilesTable = "FriendProfiles"

// Tie classifications for a connection edge, in rule-priority order
const (
	TieSunSign      = "sun_sign"
	TieMoonSign     = "moon_sign"
	TieRisingSign   = "rising_sign"
	TieElement      = "element"
	TieMutualPlanet = "mutual_planet"
)

// ConnectionEdge is a derived connection between two friends. Edges are
// recomputed from scratch on every request and never persisted.
type ConnectionEdge struct {
	FriendA int    `json:"friendA"`
	FriendB int    `json:"friendB"`
	Tie     string `json:"tie"`
}

// SortMode selects the ordering applied to a friend list
type SortMode string

const (
	SortAll        SortMode = "all"
	SortRecent     SortMode = "recent"
	SortCompatible SortMode = "compatible"
)

// PendingRequest is a connection request waiting for the user's decision
type PendingRequest struct {
	UserID    string        `json:"-" dynamodbav:"userId"`
	RequestID string        `json:"requestId" dynamodbav:"requestId"`
	Profile   FriendProfile `json:"profile" dynamodbav:"profile"`
	CreatedAt string        `json:"createdAt" dynamodbav:"createdAt"`
}

// PendingRequestsTable is the DynamoDB table name for pending connection requests
const PendingRequestsTable = "PendingRequests"

package models

// BirthData holds the birth moment and place used by every chart-derived request
type BirthData struct {
	UserID    string  `json:"-" dynamodbav:"userId"`
	DateTime  string  `json:"datetime" dynamodbav:"datetime"` // RFC 3339 local birth time
	Latitude  float64 `json:"latitude" dynamodbav:"latitude"`
	Longitude float64 `json:"longitude" dynamodbav:"longitude"`
	Timezone  string  `json:"timezone" dynamodbav:"timezone"`
	Place     string  `json:"place,omitempty" dynamodbav:"place,omitempty"`
}

// GenrePreferences holds the user's selected playlist genres
type GenrePreferences struct {
	UserID string   `json:"-" dynamodbav:"userId"`
	Genres []string `json:"genres" dynamodbav:"genres"`
}

// NotificationPreferences holds the user's notification toggles
type NotificationPreferences struct {
	UserID         string `json:"-" dynamodbav:"userId"`
	DailyReading   bool   `json:"dailyReading" dynamodbav:"dailyReading"`
	FriendActivity bool   `json:"friendActivity" dynamodbav:"friendActivity"`
	ZodiacSeason   bool   `json:"zodiacSeason" dynamodbav:"zodiacSeason"`
}

// DynamoDB table names for the per-user preference records
const (
	BirthDataTable               = "BirthData"
	GenrePreferencesTable        = "GenrePreferences"
	NotificationPreferencesTable = "NotificationPreferences"
)

package models

import "time"

// Cache keys for generically cached content types
const (
	CacheKeyDailyReading     = "daily_reading"
	CacheKeyZodiacSeasonCard = "zodiac_season_card"
)

// ChartRequest carries the parameters every astro API endpoint expects
type ChartRequest struct {
	DateTime  string  `json:"datetime"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// SonificationLayer is one planet's contribution to the generated audio
type SonificationLayer struct {
	Planet    string  `json:"planet"`
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
}

// Sonification is the audio-parameter payload generated from a chart
type Sonification struct {
	BaseFrequency float64             `json:"baseFrequency"`
	Waveform      string              `json:"waveform"`
	TempoBPM      int                 `json:"tempoBpm"`
	Layers        []SonificationLayer `json:"layers"`
	AudioKey      string              `json:"audioKey,omitempty"` // S3 key of the rendered audio, when available
}

// DailyReading is the AI-generated horoscope text for one day and life area
type DailyReading struct {
	Date     string `json:"date"`
	LifeArea string `json:"lifeArea"`
	Headline string `json:"headline"`
	Body     string `json:"body"`
}

// ZodiacSeasonCard describes the current zodiac season. ValidUntil is the
// card's own expiry; the session cache does not enforce it, readers must.
type ZodiacSeasonCard struct {
	Sign        string    `json:"sign"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ValidUntil  time.Time `json:"validUntil"`
}

// AlignmentResult is the backend-computed compatibility between two charts
type AlignmentResult struct {
	Score         int      `json:"score"`
	Summary       string   `json:"summary"`
	MutualPlanets []string `json:"mutualPlanets"`
}

// Playlist is a generated playlist with Spotify track references
type Playlist struct {
	Name       string   `json:"name"`
	TrackURIs  []string `json:"trackUris"`
	SpotifyURL string   `json:"spotifyUrl"`
}

// GeocodeResult resolves a birth place to coordinates and a timezone
type GeocodeResult struct {
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
}

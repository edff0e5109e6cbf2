package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"astra_server/models"
)

// remoteCallTimeout bounds every astro API call
const remoteCallTimeout = 30 * time.Second

// ContentService is the client for the remote astrology backend. It consults
// the session cache before each call and populates it after a successful
// fetch. Failures are surfaced as wrapped errors with a message string; no
// call is retried automatically.
type ContentService struct {
	Cache   *SessionCache
	BaseURL string
	Client  *http.Client
}

// NewContentService creates a content service reading the backend base URL
// from ASTRO_API_BASE_URL
func NewContentService(cache *SessionCache) *ContentService {
	return &ContentService{
		Cache:   cache,
		BaseURL: os.Getenv("ASTRO_API_BASE_URL"),
		Client:  &http.Client{Timeout: remoteCallTimeout},
	}
}

// FetchSonifications retrieves the user and daily sonifications. Both are
// served from their dedicated cache slots when present; otherwise the two
// fetches are issued concurrently and both must resolve before anything is
// cached or returned.
func (cs *ContentService) FetchSonifications(ctx context.Context, birth models.BirthData) (*models.Sonification, *models.Sonification, error) {
	if user, ok := cs.Cache.UserSonification(); ok {
		if daily, ok := cs.Cache.DailySonification(); ok {
			return user, daily, nil
		}
	}

	var user, daily models.Sonification
	errs := make(chan error, 2)

	go func() {
		errs <- cs.postJSON(ctx, "/v1/sonification/user", chartRequest(birth), &user)
	}()
	go func() {
		errs <- cs.postJSON(ctx, "/v1/sonification/daily", chartRequest(birth), &daily)
	}()

	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			return nil, nil, fmt.Errorf("failed to fetch sonifications: %w", err)
		}
	}

	cs.Cache.SetUserSonification(&user)
	cs.Cache.SetDailySonification(&daily)
	return &user, &daily, nil
}

// FetchDailyReading retrieves the AI-generated reading for a life area,
// served from the session cache after the first fetch
func (cs *ContentService) FetchDailyReading(ctx context.Context, birth models.BirthData, lifeArea string) (*models.DailyReading, error) {
	if cached, ok := cs.Cache.Get(models.CacheKeyDailyReading); ok {
		if reading, ok := cached.(*models.DailyReading); ok && reading.LifeArea == lifeArea {
			return reading, nil
		}
	}

	body := struct {
		models.ChartRequest
		LifeArea string `json:"lifeArea"`
	}{chartRequest(birth), lifeArea}

	var reading models.DailyReading
	if err := cs.postJSON(ctx, "/v1/reading/daily", body, &reading); err != nil {
		return nil, fmt.Errorf("failed to fetch daily reading: %w", err)
	}

	cs.Cache.Set(models.CacheKeyDailyReading, &reading)
	return &reading, nil
}

// FetchZodiacSeasonCard retrieves the current season card. A cached card is
// trusted only while its own ValidUntil is in the future; the cache itself
// never expires entries.
func (cs *ContentService) FetchZodiacSeasonCard(ctx context.Context, birth models.BirthData) (*models.ZodiacSeasonCard, error) {
	if cached, ok := cs.Cache.Get(models.CacheKeyZodiacSeasonCard); ok {
		if card, ok := cached.(*models.ZodiacSeasonCard); ok && card.ValidUntil.After(time.Now()) {
			return card, nil
		}
		log.Println("Cached zodiac season card expired, refetching")
	}

	var card models.ZodiacSeasonCard
	if err := cs.postJSON(ctx, "/v1/season/card", chartRequest(birth), &card); err != nil {
		return nil, fmt.Errorf("failed to fetch zodiac season card: %w", err)
	}

	cs.Cache.Set(models.CacheKeyZodiacSeasonCard, &card)
	return &card, nil
}

// FetchAlignment computes compatibility between the user's chart and a
// friend's birth data. Results are not cached; each pairing is distinct.
func (cs *ContentService) FetchAlignment(ctx context.Context, birth, friendBirth models.BirthData) (*models.AlignmentResult, error) {
	body := struct {
		models.ChartRequest
		Friend models.ChartRequest `json:"friend"`
	}{chartRequest(birth), chartRequest(friendBirth)}

	var result models.AlignmentResult
	if err := cs.postJSON(ctx, "/v1/alignment", body, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch alignment: %w", err)
	}
	return &result, nil
}

// GeneratePlaylist asks the backend for a playlist matching the chart and the
// user's genre preferences
func (cs *ContentService) GeneratePlaylist(ctx context.Context, birth models.BirthData, genres []string) (*models.Playlist, error) {
	body := struct {
		models.ChartRequest
		Genres []string `json:"genres"`
	}{chartRequest(birth), genres}

	var playlist models.Playlist
	if err := cs.postJSON(ctx, "/v1/playlist", body, &playlist); err != nil {
		return nil, fmt.Errorf("failed to generate playlist: %w", err)
	}
	return &playlist, nil
}

// Geocode resolves a birth place name to coordinates and a timezone
func (cs *ContentService) Geocode(ctx context.Context, place string) (*models.GeocodeResult, error) {
	body := struct {
		Place string `json:"place"`
	}{place}

	var result models.GeocodeResult
	if err := cs.postJSON(ctx, "/v1/geocode", body, &result); err != nil {
		return nil, fmt.Errorf("failed to geocode place '%s': %w", place, err)
	}
	return &result, nil
}

// postJSON issues a JSON POST against the astro backend and decodes the
// response into out
func (cs *ContentService) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cs.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := cs.Client.Do(req)
	if err != nil {
		return fmt.Errorf("astro API call to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("astro API returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func chartRequest(birth models.BirthData) models.ChartRequest {
	return models.ChartRequest{
		DateTime:  birth.DateTime,
		Latitude:  birth.Latitude,
		Longitude: birth.Longitude,
		Timezone:  birth.Timezone,
	}
}

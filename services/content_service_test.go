package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"astra_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBirthData() models.BirthData {
	return models.BirthData{
		DateTime:  "1995-03-14T08:30:00Z",
		Latitude:  40.71,
		Longitude: -74.0,
		Timezone:  "America/New_York",
	}
}

func newTestContentService(handler http.Handler) (*ContentService, *httptest.Server) {
	server := httptest.NewServer(handler)
	cs := &ContentService{
		Cache:   NewSessionCache(),
		BaseURL: server.URL,
		Client:  &http.Client{Timeout: remoteCallTimeout},
	}
	return cs, server
}

func TestFetchSonificationsCachesBothSlots(t *testing.T) {
	var calls int64
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/sonification/user", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		json.NewEncoder(w).Encode(models.Sonification{BaseFrequency: 432, Waveform: "sine"})
	})
	mux.HandleFunc("/v1/sonification/daily", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		json.NewEncoder(w).Encode(models.Sonification{BaseFrequency: 528, Waveform: "triangle"})
	})

	cs, server := newTestContentService(mux)
	defer server.Close()

	user, daily, err := cs.FetchSonifications(context.Background(), testBirthData())
	require.NoError(t, err)
	assert.Equal(t, float64(432), user.BaseFrequency)
	assert.Equal(t, float64(528), daily.BaseFrequency)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))

	// Second call is served from the dedicated slots
	_, _, err = cs.FetchSonifications(context.Background(), testBirthData())
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestFetchDailyReadingUsesCache(t *testing.T) {
	var calls int64
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/reading/daily", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		json.NewEncoder(w).Encode(models.DailyReading{
			Date:     "2026-08-23",
			LifeArea: "career",
			Headline: "A grounded day",
		})
	})

	cs, server := newTestContentService(mux)
	defer server.Close()

	reading, err := cs.FetchDailyReading(context.Background(), testBirthData(), "career")
	require.NoError(t, err)
	assert.Equal(t, "A grounded day", reading.Headline)

	_, err = cs.FetchDailyReading(context.Background(), testBirthData(), "career")
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))

	// A different life area bypasses the cached reading
	_, err = cs.FetchDailyReading(context.Background(), testBirthData(), "love")
	require.NoError(t, err)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestFetchZodiacSeasonCardRespectsValidUntil(t *testing.T) {
	var calls int64
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/season/card", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		json.NewEncoder(w).Encode(models.ZodiacSeasonCard{
			Sign:       "Virgo",
			Title:      "Virgo Season",
			ValidUntil: time.Now().Add(24 * time.Hour),
		})
	})

	cs, server := newTestContentService(mux)
	defer server.Close()

	card, err := cs.FetchZodiacSeasonCard(context.Background(), testBirthData())
	require.NoError(t, err)
	assert.Equal(t, "Virgo", card.Sign)

	// Still valid: served from cache
	_, err = cs.FetchZodiacSeasonCard(context.Background(), testBirthData())
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))

	// Expired card in the cache triggers a refetch; the cache itself never
	// expires entries, the service checks ValidUntil
	cs.Cache.Set(models.CacheKeyZodiacSeasonCard, &models.ZodiacSeasonCard{
		Sign:       "Leo",
		ValidUntil: time.Now().Add(-time.Hour),
	})
	card, err = cs.FetchZodiacSeasonCard(context.Background(), testBirthData())
	require.NoError(t, err)
	assert.Equal(t, "Virgo", card.Sign)
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestFetchAlignmentDecodesTypedResult(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/alignment", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			models.ChartRequest
			Friend models.ChartRequest `json:"friend"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "America/New_York", body.Timezone)
		assert.Equal(t, "Europe/Lisbon", body.Friend.Timezone)

		json.NewEncoder(w).Encode(models.AlignmentResult{
			Score:         88,
			Summary:       "Strong water alignment",
			MutualPlanets: []string{"Neptune"},
		})
	})

	cs, server := newTestContentService(mux)
	defer server.Close()

	friendBirth := models.BirthData{DateTime: "1993-07-02T22:10:00Z", Latitude: 38.7, Longitude: -9.1, Timezone: "Europe/Lisbon"}
	result, err := cs.FetchAlignment(context.Background(), testBirthData(), friendBirth)
	require.NoError(t, err)
	assert.Equal(t, 88, result.Score)
	assert.Equal(t, []string{"Neptune"}, result.MutualPlanets)
}

func TestContentServiceSurfacesBackendErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/reading/daily", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	})

	cs, server := newTestContentService(mux)
	defer server.Close()

	_, err := cs.FetchDailyReading(context.Background(), testBirthData(), "career")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")

	// A failed fetch must not populate the cache
	assert.False(t, cs.Cache.Has(models.CacheKeyDailyReading))
}

package services

import (
	"sync"

	"astra_server/models"
)

// SessionCache memoizes remote-fetched content for the lifetime of one server
// process. It is a plain keyed map: set overwrites, there is no eviction, no
// size bound and no TTL. Content types that carry their own expiry (such as
// the zodiac season card's ValidUntil) must be checked by the reader before a
// hit is trusted; the cache never inspects payloads.
//
// The user and daily sonifications get dedicated slots instead of generic
// keys because they are always fetched together and read from more than one
// screen.
//
// Construct one in main and inject it; handlers run concurrently, so all
// access goes through the mutex.
type SessionCache struct {
	mu                sync.RWMutex
	entries           map[string]interface{}
	userSonification  *models.Sonification
	dailySonification *models.Sonification
}

// NewSessionCache creates an empty session cache
func NewSessionCache() *SessionCache {
	return &SessionCache{entries: make(map[string]interface{})}
}

// Get returns the payload stored under key, and whether one was present
func (sc *SessionCache) Get(key string) (interface{}, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	payload, ok := sc.entries[key]
	return payload, ok
}

// Set unconditionally stores payload under key, overwriting any existing entry
func (sc *SessionCache) Set(key string, payload interface{}) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.entries[key] = payload
}

// Has reports whether an entry exists for key without retrieving it
func (sc *SessionCache) Has(key string) bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	_, ok := sc.entries[key]
	return ok
}

// UserSonification returns the cached user sonification, if any
func (sc *SessionCache) UserSonification() (*models.Sonification, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.userSonification, sc.userSonification != nil
}

// SetUserSonification stores the user sonification slot
func (sc *SessionCache) SetUserSonification(s *models.Sonification) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.userSonification = s
}

// DailySonification returns the cached daily sonification, if any
func (sc *SessionCache) DailySonification() (*models.Sonification, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.dailySonification, sc.dailySonification != nil
}

// SetDailySonification stores the daily sonification slot
func (sc *SessionCache) SetDailySonification(s *models.Sonification) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.dailySonification = s
}

// Clear drops every entry, including the sonification slots. Used on session
// teardown and when the user wipes their data.
func (sc *SessionCache) Clear() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.entries = make(map[string]interface{})
	sc.userSonification = nil
	sc.dailySonification = nil
}

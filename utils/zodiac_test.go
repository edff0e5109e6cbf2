package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElementForSign(t *testing.T) {
	assert.Equal(t, "Fire", ElementForSign("Aries"))
	assert.Equal(t, "Earth", ElementForSign("Virgo"))
	assert.Equal(t, "Air", ElementForSign("Aquarius"))
	assert.Equal(t, "Water", ElementForSign("Pisces"))
	assert.Equal(t, "", ElementForSign("Ophiuchus"))
}

func TestModalityForSign(t *testing.T) {
	assert.Equal(t, "Cardinal", ModalityForSign("Capricorn"))
	assert.Equal(t, "Fixed", ModalityForSign("Leo"))
	assert.Equal(t, "Mutable", ModalityForSign("Gemini"))
	assert.Equal(t, "", ModalityForSign(""))
}

func TestEverySignHasElementAndModality(t *testing.T) {
	assert.Len(t, ZodiacSigns, 12)
	for _, sign := range ZodiacSigns {
		assert.NotEmpty(t, ElementForSign(sign), "missing element for %s", sign)
		assert.NotEmpty(t, ModalityForSign(sign), "missing modality for %s", sign)
	}
}

func TestRecencyLabel(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", RecencyLabel(now.Add(-30*time.Second), now))
	assert.Equal(t, "1 minute ago", RecencyLabel(now.Add(-90*time.Second), now))
	assert.Equal(t, "5 minutes ago", RecencyLabel(now.Add(-5*time.Minute), now))
	assert.Equal(t, "1 hour ago", RecencyLabel(now.Add(-time.Hour), now))
	assert.Equal(t, "2 hours ago", RecencyLabel(now.Add(-2*time.Hour), now))
	assert.Equal(t, "Yesterday", RecencyLabel(now.Add(-30*time.Hour), now))
	assert.Equal(t, "3 days ago", RecencyLabel(now.Add(-72*time.Hour), now))
	assert.Equal(t, "1 week ago", RecencyLabel(now.Add(-8*24*time.Hour), now))
	assert.Equal(t, "3 weeks ago", RecencyLabel(now.Add(-22*24*time.Hour), now))
}

func TestRecencyLabelZeroAndFutureTimes(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", RecencyLabel(time.Time{}, now))
	assert.Equal(t, "Just now", RecencyLabel(now.Add(time.Hour), now))
}

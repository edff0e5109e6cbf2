package utils

import (
	"fmt"
	"time"
)

// ZodiacSigns lists the twelve signs in ecliptic order
var ZodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signElements = map[string]string{
	"Aries": "Fire", "Leo": "Fire", "Sagittarius": "Fire",
	"Taurus": "Earth", "Virgo": "Earth", "Capricorn": "Earth",
	"Gemini": "Air", "Libra": "Air", "Aquarius": "Air",
	"Cancer": "Water", "Scorpio": "Water", "Pisces": "Water",
}

var signModalities = map[string]string{
	"Aries": "Cardinal", "Cancer": "Cardinal", "Libra": "Cardinal", "Capricorn": "Cardinal",
	"Taurus": "Fixed", "Leo": "Fixed", "Scorpio": "Fixed", "Aquarius": "Fixed",
	"Gemini": "Mutable", "Virgo": "Mutable", "Sagittarius": "Mutable", "Pisces": "Mutable",
}

// ElementForSign returns the element (Fire/Earth/Air/Water) for a zodiac sign,
// or "" for an unknown sign
func ElementForSign(sign string) string {
	return signElements[sign]
}

// ModalityForSign returns the modality (Cardinal/Fixed/Mutable) for a zodiac sign,
// or "" for an unknown sign
func ModalityForSign(sign string) string {
	return signModalities[sign]
}

// RecencyLabel formats how long ago a moment was as display text. Sorting by
// recency uses the timestamp itself; this label is presentation only.
func RecencyLabel(t time.Time, now time.Time) string {
	if t.IsZero() || t.After(now) {
		return "Just now"
	}

	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		minutes := int(d.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case d < 48*time.Hour:
		return "Yesterday"
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	default:
		weeks := int(d.Hours() / 24 / 7)
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	}
}

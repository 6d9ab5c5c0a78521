package models

import (
	"fmt"
	"time"
)

// Slot keys are hour-granularity identifiers like "2025-06-10T09:00",
// always in the trainer's reference timezone. Two timestamps in the same
// calendar hour map to the same key.

const slotKeyLayout = "2006-01-02T15:04"

var refLocation *time.Location

func init() {
	loc, err := time.LoadLocation("Europe/Bucharest")
	if err != nil {
		// tzdata missing on the host; EET keeps keys stable
		loc = time.FixedZone("EET", 2*60*60)
	}
	refLocation = loc
}

// FormatSlotKey truncates t to the hour in the reference timezone.
func FormatSlotKey(t time.Time) string {
	lt := t.In(refLocation)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), lt.Hour(), 0, 0, 0, refLocation).Format(slotKeyLayout)
}

// ParseSlotKey validates a client-supplied slot key and returns its
// canonical form.
func ParseSlotKey(s string) (string, error) {
	t, err := time.ParseInLocation(slotKeyLayout, s, refLocation)
	if err != nil {
		return "", fmt.Errorf("invalid slot key %q: %w", s, err)
	}
	if t.Minute() != 0 {
		return "", fmt.Errorf("invalid slot key %q: not on the hour", s)
	}
	return t.Format(slotKeyLayout), nil
}

package timeutil

import (
	"fmt"
	"time"
)

// SeasonFor returns the NBA season label containing t, e.g. "2025-26".
// Seasons roll over in October: a game in March 2026 belongs to 2025-26.
func SeasonFor(t time.Time) string {
	year := t.Year()
	if t.Month() < time.October {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}

// CurrentSeason returns the season label for the current time.
func CurrentSeason() string {
	return SeasonFor(time.Now())
}

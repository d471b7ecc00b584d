package timezone

import (
	"time"

	"github.com/rs/zerolog/log"
)

// transitionWindow bounds how far from a wall-clock reading we look for the
// offsets that could apply to it. Transitions closer together than this
// are not resolved.
const transitionWindow = 12 * time.Hour

var (
	appLocation *time.Location
)

// Init sets the application timezone. Unknown names fall back to UTC.
func Init(name string) {
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")
		return time.UTC
	}
	return appLocation
}

// OffsetAt returns the UTC offset in effect for t in its own location.
func OffsetAt(t time.Time) time.Duration {
	_, offset := t.Zone()

	return time.Duration(offset) * time.Second
}

// Localize reads the wall clock of wall (its location is ignored) as civil
// time in loc.
//
// Ambiguous readings (a repeated hour when clocks fall back) resolve to the
// later instant, the one with the smaller offset. Readings inside a gap
// (clocks spring forward) are taken with the offset in force before the gap,
// so 02:30 on a spring-forward night in New York becomes 03:30 EDT.
func Localize(wall time.Time, loc *time.Location) time.Time {
	naive := time.Date(wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), time.UTC)
	guess := time.Date(wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), wall.Nanosecond(), loc)

	before := zoneOffset(guess.Add(-transitionWindow))

	var (
		chosen time.Time
		found  bool
	)

	for _, offset := range []int{before, zoneOffset(guess), zoneOffset(guess.Add(transitionWindow))} {
		instant := naive.Add(-time.Duration(offset) * time.Second).In(loc)
		if zoneOffset(instant) != offset {
			continue
		}

		if !found || instant.After(chosen) {
			chosen = instant
			found = true
		}
	}

	if found {
		return chosen
	}

	return naive.Add(-time.Duration(before) * time.Second).In(loc)
}

func zoneOffset(t time.Time) int {
	return int(OffsetAt(t) / time.Second)
}

package timezone

import (
	"suitespot/config"
	"time"

	"github.com/rs/zerolog/log"
)

var appLocation = load(config.Get().App.Timezone)

func load(zone string) *time.Location {
	if zone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		return time.UTC
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", zone).
			Msg("Failed to load timezone, falling back to UTC. Use IANA names such as 'Asia/Jakarta' or 'Europe/London'")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return loc
}

// GetLocation returns the hotel's timezone.
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current instant in the hotel's timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse parses value in the hotel's timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// DateOf returns the calendar date of t, in t's own location, as midnight UTC.
// Stay dates are compared as plain dates, so every date value in the system uses this form.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in the hotel's timezone.
func Today() time.Time {
	return DateOf(Now())
}

// ParseDate parses a YYYY-MM-DD string into a date value.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, value)
}

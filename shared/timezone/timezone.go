package timezone

import (
	"intake/config"
	"time"

	"github.com/rs/zerolog/log"
)

const fallbackZone = "Asia/Tokyo"

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	zone := cfg.App.Timezone
	if zone == "" {
		log.Warn().Str("timezone", fallbackZone).Msg("No timezone configured, using default")
		zone = fallbackZone
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", zone).
			Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the application timezone, UTC when it was never loaded.
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Format formats a time in the application timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

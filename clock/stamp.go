package clock

import (
	"fmt"
	"time"
	_ "time/tzdata" // hosts without a zoneinfo database
)

// DefaultLayout renders as YYYY-MM-DD HH:MM:SS.
const DefaultLayout = "2006-01-02 15:04:05"

// DefaultTimezone is used when no timezone is configured.
const DefaultTimezone = "Africa/Cairo"

// Stamper formats the current time in a fixed location and layout.
type Stamper struct {
	clock    Clock
	location *time.Location
	layout   string
}

// NewStamper resolves timezone by IANA name. Empty timezone and layout
// fall back to DefaultTimezone and DefaultLayout.
func NewStamper(c Clock, timezone, layout string) (*Stamper, error) {
	if c == nil {
		c = Real()
	}
	if timezone == "" {
		timezone = DefaultTimezone
	}
	if layout == "" {
		layout = DefaultLayout
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", timezone, err)
	}

	return &Stamper{clock: c, location: location, layout: layout}, nil
}

// Now returns the current time in the stamper's location.
func (s *Stamper) Now() time.Time {
	return s.clock.Now().In(s.location)
}

// Stamp returns the current time formatted with the stamper's layout.
func (s *Stamper) Stamp() string {
	return s.Now().Format(s.layout)
}

// Location returns the resolved timezone.
func (s *Stamper) Location() *time.Location {
	return s.location
}

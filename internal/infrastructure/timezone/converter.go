// Package timezone converts stored UTC instants into the stores' local time.
package timezone

import (
	"fmt"
	"time"
)

// Converter converts UTC instants to a fixed IANA location
type Converter struct {
	location *time.Location
	now      func() time.Time
}

// NewConverter loads the named location. Fails when the tz database
// does not know it.
func NewConverter(name string) (*Converter, error) {
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("timezone: load %q: %w", name, err)
	}
	return &Converter{location: location, now: time.Now}, nil
}

// Location returns the configured location
func (c *Converter) Location() *time.Location {
	return c.location
}

// ToLocal returns utc in the configured location. Zero times pass through.
func (c *Converter) ToLocal(utc time.Time) time.Time {
	if utc.IsZero() {
		return utc
	}
	return utc.In(c.location)
}

// Now returns the current time in the configured location
func (c *Converter) Now() time.Time {
	return c.now().In(c.location)
}

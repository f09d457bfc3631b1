// Package clock produces store-local civil timestamps.
//
// Timestamps are persisted as "YYYY-MM-DD HH:MM:SS" strings in the store's
// zone, so lexical order equals chronological order and range filters
// (today, this week, this month) are plain string comparisons.
package clock

import (
	"time"
	_ "time/tzdata"
)

// Layout is the canonical persisted and displayed timestamp format.
const Layout = "2006-01-02 15:04:05"

// Clock yields the current time in a fixed store zone.
type Clock struct {
	loc          *time.Location
	weekStartsOn time.Weekday
	now          func() time.Time
}

// New builds a Clock for the IANA zone name (e.g. America/Argentina/Buenos_Aires).
func New(zone string, weekStartsOn time.Weekday) (*Clock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return &Clock{loc: loc, weekStartsOn: weekStartsOn, now: time.Now}, nil
}

// Fixed returns a Clock frozen at t. Used by tests.
func Fixed(t time.Time, weekStartsOn time.Weekday) *Clock {
	return &Clock{loc: t.Location(), weekStartsOn: weekStartsOn, now: func() time.Time { return t }}
}

// Now is the current instant expressed in the store zone.
func (c *Clock) Now() time.Time { return c.now().In(c.loc) }

// Timestamp is Now formatted with Layout.
func (c *Clock) Timestamp() string { return Format(c.Now()) }

// Format renders t in Layout without changing its zone.
func Format(t time.Time) string { return t.Format(Layout) }

// Dia is the current store-local date, YYYY-MM-DD.
func (c *Clock) Dia() string { return c.Now().Format(time.DateOnly) }

// Periodo is a half-open [Desde, Hasta) range of persisted timestamps.
type Periodo struct {
	Desde string
	Hasta string
}

// Hoy covers the current store-local calendar day.
func (c *Clock) Hoy() Periodo {
	today := civilDate(c.Now())
	return periodo(today, today.AddDate(0, 0, 1))
}

// Semana covers the current calendar week, starting on the configured weekday.
func (c *Clock) Semana() Periodo {
	today := civilDate(c.Now())
	offset := (int(today.Weekday()) - int(c.weekStartsOn) + 7) % 7
	start := today.AddDate(0, 0, -offset)
	return periodo(start, start.AddDate(0, 0, 7))
}

// Mes covers the current calendar month.
func (c *Clock) Mes() Periodo {
	today := civilDate(c.Now())
	start := today.AddDate(0, 0, 1-today.Day())
	return periodo(start, start.AddDate(0, 1, 0))
}

// civilDate keeps only the store-local date, carried in UTC so that date
// arithmetic never crosses a DST transition.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func periodo(desde, hasta time.Time) Periodo {
	return Periodo{Desde: Format(desde), Hasta: Format(hasta)}
}

// Package window implements the celebration-window computation: a pure,
// synchronous filter over the full contact list selecting contacts whose
// date falls inside an inclusive rolling window starting at "now".
//
// The comparison is deliberately year-sensitive, matching the data the
// store actually holds: a date whose year is in the past never matches
// until the contact is updated. Recurrence-by-month/day is a known open
// question; DaysUntil is factored out so a recurrence-aware variant can
// replace Filter without touching callers.
package window

import (
	"time"

	"github.com/mvrettas/go-celebrations-backend/internal/domain"
)

// DefaultDays is the rolling window size used when the caller passes a
// non-positive day count.
const DefaultDays = 5

// dateLayouts are the accepted forms for the stored date string: a bare
// ISO calendar date, or the full RFC 3339 stamps the mobile client wrote
// via Date.toISOString().
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
}

// ParseDate parses a stored ISO-8601 date string. The second return value
// is false when the string matches no accepted layout.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// startOfDay truncates t to midnight in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// In reports whether date lies in [startOfDay(now), startOfDay(now)+days],
// both bounds inclusive. Unparseable dates never match.
func In(date string, now time.Time, days int) bool {
	if days <= 0 {
		days = DefaultDays
	}
	t, ok := ParseDate(date)
	if !ok {
		return false
	}
	day := startOfDay(t.In(now.Location()))
	lo := startOfDay(now)
	hi := lo.AddDate(0, 0, days)
	return !day.Before(lo) && !day.After(hi)
}

// Filter returns the ordered, stable subsequence of contacts whose date
// lies inside the window. Empty input yields an empty (non-nil) output, and
// the result is idempotent: Filter(Filter(L, now), now) == Filter(L, now).
func Filter(contacts []domain.Contact, now time.Time, days int) []domain.Contact {
	out := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if In(c.Date, now, days) {
			out = append(out, c)
		}
	}
	return out
}

// DaysUntil returns the whole calendar days from now to the stored date
// (0 when the date is today). The second return value is false when the
// date does not parse.
func DaysUntil(date string, now time.Time) (int, bool) {
	t, ok := ParseDate(date)
	if !ok {
		return 0, false
	}
	// Compare the two calendar dates rebuilt in UTC: a DST transition in
	// now's location would otherwise leave a 23h gap between midnights and
	// truncate the count one day short.
	ty, tm, td := t.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	target := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	base := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(target.Sub(base).Hours() / 24), true
}

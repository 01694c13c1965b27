// Package period resolves sales-summary query parameters into a concrete
// time window.
package period

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDate indicates a from/to value that is not a YYYY-MM-DD date.
	ErrInvalidDate = errors.New("invalid date format. Use YYYY-MM-DD")
	// ErrInvalidPeriod indicates an unrecognized named period token.
	ErrInvalidPeriod = errors.New("invalid period")
)

const dateLayout = "2006-01-02"

// Window is a resolved aggregation window. Start and End are nil when no
// date filter applies (the "all time" case).
type Window struct {
	Start *time.Time
	End   *time.Time
	Label string
}

// Filtered reports whether the window constrains the aggregation.
func (w Window) Filtered() bool {
	return w.Start != nil && w.End != nil
}

// Resolve computes the aggregation window for the given parameters.
//
// An explicit from/to pair takes precedence over a named period and spans
// whole days in UTC. A named period ("day", "week", "month") starts at the
// corresponding local midnight and ends at now; "week" starts on the most
// recent Sunday. With neither, the window is unbounded.
func Resolve(now time.Time, from, to, name string) (Window, error) {
	if from != "" && to != "" {
		start, err := time.ParseInLocation(dateLayout, from, time.UTC)
		if err != nil {
			return Window{}, ErrInvalidDate
		}
		end, err := time.ParseInLocation(dateLayout, to, time.UTC)
		if err != nil {
			return Window{}, ErrInvalidDate
		}
		end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		return Window{
			Start: &start,
			End:   &end,
			Label: fmt.Sprintf("%s -> %s", from, to),
		}, nil
	}

	if name != "" {
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		var start time.Time
		switch name {
		case "day":
			start = midnight
		case "week":
			start = midnight.AddDate(0, 0, -int(now.Weekday()))
		case "month":
			start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		default:
			return Window{}, ErrInvalidPeriod
		}

		end := now
		return Window{Start: &start, End: &end, Label: name}, nil
	}

	return Window{Label: "all time"}, nil
}

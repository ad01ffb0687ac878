// Package slots holds the fixed slot catalog: the ordered, process-wide
// list of bookable time-slot labels for any calendar day. The catalog is
// read-only at runtime; availability is the catalog minus the ledgers.
package slots

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

type Catalog []string

// FromConfig parses a comma-separated label list, falling back to the
// built-in half-hour catalog when the list is empty.
func FromConfig(raw string) Catalog {
	if strings.TrimSpace(raw) == "" {
		return Default()
	}

	var out Catalog
	for _, label := range strings.Split(raw, ",") {
		label = strings.TrimSpace(label)
		if label != "" {
			out = append(out, label)
		}
	}

	if len(out) == 0 {
		return Default()
	}
	return out
}

// Default enumerates half-hour slots from 09:00 to 17:00.
func Default() Catalog {
	var out Catalog

	start := time.Date(2000, 1, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, 17, 0, 0, 0, time.UTC)

	for cur := start; cur.Before(end); cur = cur.Add(30 * time.Minute) {
		out = append(out, fmt.Sprintf(
			"%s-%s",
			cur.Format("15:04"),
			cur.Add(30*time.Minute).Format("15:04"),
		))
	}

	return out
}

// ParseDate validates a calendar date and returns it normalized to
// YYYY-MM-DD. Dates are compared as strings everywhere else.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// Today is the current calendar date in the server's location.
func Today() string {
	return time.Now().Format(DateLayout)
}

// Package format holds pure display transforms: timestamp rendering in
// the operator's day-first convention, id shortening for compact table
// cells, and width-aware truncation.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// DefaultIDLength is the default shortened-id prefix length.
const DefaultIDLength = 8

// timestampLayouts are tried in order when parsing backend timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date renders a backend timestamp as a day-first date ("02.01.2006").
// Unparseable input is returned verbatim rather than hidden.
func Date(s string) string {
	if s == "" {
		return "-"
	}
	t, ok := parseTimestamp(s)
	if !ok {
		return s
	}
	return t.Format("02.01.2006")
}

// DateTime renders a backend timestamp with the time component
// ("02.01.2006 15:04"). Used for created/updated fields.
func DateTime(s string) string {
	if s == "" {
		return "-"
	}
	t, ok := parseTimestamp(s)
	if !ok {
		return s
	}
	return t.Format("02.01.2006 15:04")
}

// ShortenID truncates a stringified id to length characters, appending an
// ellipsis marker only when something was cut. Display only; never use
// the result for lookups.
func ShortenID(id any, length int) string {
	if length <= 0 {
		length = DefaultIDLength
	}
	idStr := fmt.Sprintf("%v", id)
	if len(idStr) <= length {
		return idStr
	}
	return idStr[:length] + "..."
}

// Cell fits s into a table cell of the given display width, truncating
// with a single-rune ellipsis. Width is measured in terminal cells so
// wide runes don't break column alignment.
func Cell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return runewidth.Truncate(s, width-1, "") + "…"
}

// Pad renders s left-aligned in exactly width display cells, truncating
// when too long.
func Pad(s string, width int) string {
	s = Cell(s, width)
	gap := width - runewidth.StringWidth(s)
	if gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

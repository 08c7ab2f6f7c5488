package jobscout

import (
	"regexp"
	"strconv"
	"strings"
)

// postedPattern matches relative-date phrases like "3 days ago" or "2 weeks ago".
var postedPattern = regexp.MustCompile(`(\d+)\s*(hour|day|week|month|year)s?\s+ago`)

// agoWord matches the standalone word "ago", which marks a label fragment
// as posted-date text rather than a location.
var agoWord = regexp.MustCompile(`\bago\b`)

// ParsePostedDays converts relative-date text like "6 days ago", "2 weeks ago",
// "Just now", "Today", or "Yesterday" into a whole-day age. Matching is
// case-insensitive and ignores surrounding whitespace. The second return value
// is false when the text cannot be parsed; unparseable text is never an error.
func ParsePostedDays(text string) (int, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return 0, false
	}

	switch t {
	case "just now", "today":
		return 0, true
	case "yesterday":
		return 1, true
	}

	m := postedPattern.FindStringSubmatch(t)
	if m == nil {
		return 0, false
	}

	value, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	switch m[2] {
	case "hour":
		return 0, true
	case "day":
		return value, true
	case "week":
		return value * 7, true
	case "month":
		return value * 30, true
	case "year":
		return value * 365, true
	}

	return 0, false
}

// IsPostedText reports whether a label fragment is posted-date text rather
// than a location. A fragment qualifies if it contains the word "ago" or is
// one of the known phrases "just now", "today", or "yesterday".
func IsPostedText(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if agoWord.MatchString(t) {
		return true
	}
	switch t {
	case "just now", "today", "yesterday":
		return true
	}
	return false
}

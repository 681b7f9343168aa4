package ical

import (
	"strconv"
	"strings"
	"time"
)

const dateOnlyLength = 8 // YYYYMMDD

// DecodeDate converts an iCalendar DATE or DATE-TIME token into an instant.
//
// Every character except digits and 'T' is stripped first, so parameter leftovers and
// separators do not matter. An 8 character result is an all-day date at midnight in loc.
// Longer results carry a time of day; the instant is UTC when the original token ends
// with 'Z' and loc otherwise. Missing or malformed numeric groups decode as zero.
func DecodeDate(token string, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}

	token = strings.TrimSpace(token)
	clean := stripToken(token)

	year := numberAt(clean, 0, 4)
	month := numberAt(clean, 4, 6)
	day := numberAt(clean, 6, 8)

	if len(clean) == dateOnlyLength {
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	}

	hour := numberAt(clean, 9, 11)
	minute := numberAt(clean, 11, 13)
	second := numberAt(clean, 13, 15)

	if strings.HasSuffix(token, "Z") {
		return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
}

func stripToken(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range token {
		if (r >= '0' && r <= '9') || r == 'T' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// numberAt парсит s[from:to], недоступные или некорректные группы дают 0
func numberAt(s string, from, to int) int {
	if from >= len(s) {
		return 0
	}
	if to > len(s) {
		to = len(s)
	}
	n, err := strconv.Atoi(s[from:to])
	if err != nil {
		return 0
	}
	return n
}

// Package ical implements the small subset of iCalendar (RFC 5545) needed to read
// reservation exports: line unfolding, VEVENT extraction and DATE / DATE-TIME decoding.
package ical

import "strings"

// Unfold reassembles folded content lines.
//
// A physical line that starts with a single space or horizontal tab continues the
// previous logical line: the leading whitespace character is dropped and the rest is
// appended. Both "\n" and "\r\n" line endings are accepted.
func Unfold(raw string) []string {
	physical := strings.Split(raw, "\n")
	lines := make([]string, 0, len(physical))

	for _, line := range physical {
		line = strings.TrimSuffix(line, "\r")

		if isContinuation(line) && len(lines) > 0 {
			lines[len(lines)-1] += line[1:]
			continue
		}
		if isContinuation(line) {
			lines = append(lines, line[1:])
			continue
		}

		lines = append(lines, line)
	}

	return lines
}

func isContinuation(line string) bool {
	return len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
}

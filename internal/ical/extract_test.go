package ical

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const airbnbExport = "BEGIN:VCALENDAR\r\n" +
	"PRODID;X-RICAL-TZSOURCE=TZINFO:-//Airbnb Inc//Hosting Calendar 1.0//EN\r\n" +
	"VERSION:2.0\r\n" +
	"BEGIN:VEVENT\r\n" +
	"DTEND;VALUE=DATE:20250604\r\n" +
	"DTSTART;VALUE=DATE:20250602\r\n" +
	"UID:1418fb94e984-aaa@airbnb.com\r\n" +
	"DESCRIPTION:Reservation URL: https://www.airbnb.com/hosting/reservations/\r\n" +
	" details/HMABCDEF12\r\n" +
	"SUMMARY:Reserved\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"DTEND;VALUE=DATE:20250720\r\n" +
	"DTSTART;VALUE=DATE:20250715\r\n" +
	"UID:1418fb94e984-bbb@airbnb.com\r\n" +
	"SUMMARY:Airbnb (Not available)\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParse_AirbnbExport(t *testing.T) {
	events := Parse([]byte(airbnbExport), time.UTC)

	require.Len(t, events, 2)

	assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC), events[0].End)
	assert.Equal(t, "Reserved", events[0].Summary)
	assert.Equal(t, "1418fb94e984-aaa@airbnb.com", events[0].UID)

	assert.Equal(t, "Airbnb (Not available)", events[1].Summary)
}

func TestExtractEvents_ParameterizedStart(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		"DTSTART;VALUE=DATE:20250701",
		"DTEND;VALUE=DATE:20250702",
		"END:VEVENT",
	}

	events := ExtractEvents(lines, time.UTC)

	require.Len(t, events, 1)
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), events[0].Start)
}

func TestExtractEvents_SummaryKeepsColons(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		"DTSTART:20250701T150000Z",
		"DTEND:20250702T110000Z",
		"SUMMARY:Check-in 15:00 see https://example.com/a:b",
		"END:VEVENT",
	}

	events := ExtractEvents(lines, time.UTC)

	require.Len(t, events, 1)
	assert.Equal(t, "Check-in 15:00 see https://example.com/a:b", events[0].Summary)
}

func TestExtractEvents_DropsIncompleteBlocks(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		"DTSTART:20250701",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"DTEND:20250703",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"DTSTART:20250801",
		"DTEND:20250805",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"DTSTART:20250901",
		"DTEND:20250905",
	}

	events := ExtractEvents(lines, time.UTC)

	require.Len(t, events, 1)
	assert.Equal(t, time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), events[0].Start)
}

func TestExtractEvents_NestedBeginResetsBlock(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		"DTSTART:20250701",
		"BEGIN:VEVENT",
		"DTEND:20250705",
		"END:VEVENT",
	}

	assert.Empty(t, ExtractEvents(lines, time.UTC))
}

func TestExtractEvents_IgnoresPropertiesOutsideBlocks(t *testing.T) {
	lines := []string{
		"DTSTART:20250701",
		"DTEND:20250705",
		"END:VEVENT",
	}

	assert.Empty(t, ExtractEvents(lines, time.UTC))
}

func TestParse_MalformedBody(t *testing.T) {
	body := []byte("<html><body>502 Bad Gateway</body></html>\nrandom: text")

	assert.NotPanics(t, func() {
		events := Parse(body, time.UTC)
		assert.Empty(t, events)
	})
	assert.False(t, LooksLikeCalendar(body))
	assert.True(t, LooksLikeCalendar([]byte(airbnbExport)))
}

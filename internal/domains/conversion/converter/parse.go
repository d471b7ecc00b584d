package converter

import (
	"errors"
	"fmt"
	"time"
)

const (
	minYear = 1
	maxYear = 9999
)

var errDateOutOfRange = errors.New("date value out of range")

// Timestamp is a parsed ISO-8601 reading. Naive readings carry no offset and
// are returned in UTC with their wall clock untouched.
type Timestamp struct {
	Time  time.Time
	Naive bool
}

type layout struct {
	value string
	naive bool
}

var layouts = buildLayouts()

func buildLayouts() []layout {
	dates := []string{"2006-01-02", "20060102"}
	clocks := []string{"15:04:05", "15:04", "15", "150405", "1504"}
	zones := []string{"Z07:00", "Z0700", "Z07"}

	result := make([]layout, 0, len(dates)*(1+len(clocks)*(1+len(zones))))
	for _, date := range dates {
		result = append(result, layout{value: date, naive: true})

		for _, clock := range clocks {
			result = append(result, layout{value: date + "T" + clock, naive: true})

			for _, zone := range zones {
				result = append(result, layout{value: date + "T" + clock + zone})
			}
		}
	}

	return result
}

// Parse reads an ISO-8601 date or date-time. The date and the time may be
// separated by "T", "t" or a single space.
func Parse(text string) (Timestamp, error) {
	value := normalizeSeparator(text)
	if !hasTwoDigitHour(value) {
		return Timestamp{}, fmt.Errorf("invalid isoformat string: %q", text)
	}

	for _, l := range layouts {
		parsed, err := time.Parse(l.value, value)
		if err != nil {
			continue
		}

		if parsed.Year() < minYear || parsed.Year() > maxYear {
			return Timestamp{}, fmt.Errorf("year %d is out of range", parsed.Year())
		}

		return Timestamp{Time: parsed, Naive: l.naive}, nil
	}

	return Timestamp{}, fmt.Errorf("invalid isoformat string: %q", text)
}

func separatorIndex(text string) int {
	if len(text) > 4 && text[4] == '-' {
		return 10
	}

	return 8
}

func normalizeSeparator(text string) string {
	idx := separatorIndex(text)
	if len(text) <= idx {
		return text
	}

	switch text[idx] {
	case ' ', 't':
		return text[:idx] + "T" + text[idx+1:]
	default:
		return text
	}
}

// hasTwoDigitHour reports whether a date-time carries a zero-padded hour.
// The "15" layout alone would also accept "T9:05".
func hasTwoDigitHour(value string) bool {
	idx := separatorIndex(value)
	if len(value) <= idx || value[idx] != 'T' {
		return true
	}

	return len(value) >= idx+3 && isDigit(value[idx+1]) && isDigit(value[idx+2])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func checkYear(t time.Time) error {
	if t.Year() < minYear || t.Year() > maxYear {
		return errDateOutOfRange
	}

	return nil
}

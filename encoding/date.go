package encoding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/rcsv/errs"
	"github.com/arloliu/rcsv/format"
)

// ParseTimestamp decodes a dotted date phrase value into its six components.
//
// Every field is fixed width: two digits, or four for the year. Two-digit
// years are the historical form and map to 1900+yy; four-digit years below
// 2000 are rejected so the mapping stays one-to-one. Component ranges:
// month 1-12, day 1-31, hour 0-23, minute 0-59, second 0-60 (60 admits a
// leap second).
//
// Parameters:
//   - s: a date value such as "2024.03.09.01.38.02" or "99.12.31.23.59.59"
//
// Returns:
//   - the decoded Timestamp, or errs.ErrInvalidTimestamp naming the first
//     offending component
func ParseTimestamp(s string) (format.Timestamp, error) {
	var ts format.Timestamp

	parts := strings.Split(s, ".")
	if len(parts) != 6 {
		return ts, fmt.Errorf("%w: %q has %d fields, want 6", errs.ErrInvalidTimestamp, s, len(parts))
	}

	fields := make([]int, 6)
	for i, part := range parts {
		if !dateField(part, i == 0) {
			return ts, fmt.Errorf("%w: malformed field %q in %q", errs.ErrInvalidTimestamp, part, s)
		}
		// dateField bounds the width, so Atoi cannot fail.
		fields[i], _ = strconv.Atoi(part)
	}

	year := fields[0]
	if year < 100 {
		year += 1900
	} else if year < 2000 {
		return ts, fmt.Errorf("%w: four-digit year %d is below 2000", errs.ErrInvalidTimestamp, year)
	}

	ts = format.Timestamp{
		Year:   year,
		Month:  fields[1],
		Day:    fields[2],
		Hour:   fields[3],
		Minute: fields[4],
		Second: fields[5],
	}
	if err := checkTimestamp(ts); err != nil {
		return format.Timestamp{}, err
	}

	return ts, nil
}

// FormatTimestamp encodes a Timestamp as a dotted date phrase value, using
// the two-digit year form for 1900-1999 and the four-digit form from 2000
// on. It is the inverse of ParseTimestamp over valid values.
func FormatTimestamp(ts format.Timestamp) (string, error) {
	if ts.Year < 1900 {
		return "", fmt.Errorf("%w: year %d is below 1900", errs.ErrInvalidTimestamp, ts.Year)
	}
	if err := checkTimestamp(ts); err != nil {
		return "", err
	}

	year := strconv.Itoa(ts.Year)
	if ts.Year < 2000 {
		year = pad2(ts.Year - 1900)
	}

	return year + "." + pad2(ts.Month) + "." + pad2(ts.Day) + "." +
		pad2(ts.Hour) + "." + pad2(ts.Minute) + "." + pad2(ts.Second), nil
}

func checkTimestamp(ts format.Timestamp) error {
	checks := []struct {
		name     string
		val      int
		min, max int
	}{
		{"month", ts.Month, 1, 12},
		{"day", ts.Day, 1, 31},
		{"hour", ts.Hour, 0, 23},
		{"minute", ts.Minute, 0, 59},
		{"second", ts.Second, 0, 60}, // 60 admits a leap second
	}
	for _, c := range checks {
		if c.val < c.min || c.val > c.max {
			return fmt.Errorf("%w: %s %d out of range %d-%d", errs.ErrInvalidTimestamp, c.name, c.val, c.min, c.max)
		}
	}

	return nil
}

// dateField reports whether part is a well-formed date field: all digits,
// two of them, or four for the year.
func dateField(part string, year bool) bool {
	if len(part) != 2 && !(year && len(part) == 4) {
		return false
	}
	for i := 0; i < len(part); i++ {
		if part[i] < '0' || part[i] > '9' {
			return false
		}
	}

	return true
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}

	return strconv.Itoa(v)
}

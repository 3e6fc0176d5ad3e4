package diff

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/rcsv/errs"
)

// Apply runs an RCS edit script against a text given as its line sequence
// and returns the edited sequence. The input slice is never modified, so a
// failed application leaves the caller's data untouched.
//
// Parameters:
//   - lines: the original text split on newlines, keeping the empty final
//     element a trailing newline produces (see SplitLines)
//   - script: the edit script; processing stops at the first blank record
//     header or at end of script
//
// Returns:
//   - the edited line sequence, or errs.ErrMalformedDiff for an unparseable
//     record header, or errs.ErrDiffOutOfRange when a record addresses a
//     position outside the current buffer
func Apply(lines []string, script string) ([]string, error) {
	buf := slices.Clone(lines)

	// Script positions are 1-based; the running offset converts them to
	// 0-based buffer indexes and absorbs the drift from earlier records.
	offset := -1

	rest := script
	for rest != "" {
		header, tail, _ := strings.Cut(rest, "\n")
		rest = tail
		if isBlank(header) {
			break
		}

		cmd, start, count, err := parseHeader(header)
		if err != nil {
			return nil, err
		}

		switch cmd {
		case 'd':
			from := start + offset
			to := from + count
			if from < 0 || from >= len(buf) {
				return nil, fmt.Errorf("%w: delete at line %d of %d-line buffer", errs.ErrDiffOutOfRange, start, len(buf))
			}
			if to < 0 || to >= len(buf) {
				return nil, fmt.Errorf("%w: delete of %d lines at line %d overruns %d-line buffer", errs.ErrDiffOutOfRange, count, start, len(buf))
			}
			buf = append(buf[:from:from], buf[to:]...)
			offset -= count

		case 'a':
			// The count promises payload lines the script may not carry,
			// so it never sizes an allocation.
			var add []string
			for range count {
				line, tail, ok := strings.Cut(rest, "\n")
				if !ok {
					// An unterminated payload line is not consumed; it will
					// fail header parsing on the next iteration.
					break
				}
				add = append(add, line)
				rest = tail
			}
			from := start + offset + 1
			if from < 0 || from >= len(buf) {
				return nil, fmt.Errorf("%w: append after line %d of %d-line buffer", errs.ErrDiffOutOfRange, start, len(buf))
			}
			inserted := make([]string, 0, len(buf)+len(add))
			inserted = append(inserted, buf[:from]...)
			inserted = append(inserted, add...)
			buf = append(inserted, buf[from:]...)
			offset += count
		}
	}

	return buf, nil
}

// ApplyText runs an RCS edit script against a text and returns the edited
// text. It is Apply with the newline splitting and joining handled.
func ApplyText(text, script string) (string, error) {
	lines, err := Apply(SplitLines(text), script)
	if err != nil {
		return "", err
	}

	return JoinLines(lines), nil
}

// SplitLines splits a text on newlines for the diff engine. A text ending
// with a newline yields a final empty element; keeping it lets scripts
// address inserts and deletes at end of file.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// parseHeader decodes a record header: an 'a' or 'd' command byte with the
// 1-based line number attached, then whitespace and the line count.
func parseHeader(header string) (byte, int, int, error) {
	if header == "" || (header[0] != 'a' && header[0] != 'd') {
		return 0, 0, 0, fmt.Errorf("%w: record %q", errs.ErrMalformedDiff, header)
	}
	if len(header) < 2 || header[1] < '0' || header[1] > '9' {
		return 0, 0, 0, fmt.Errorf("%w: record %q", errs.ErrMalformedDiff, header)
	}

	fields := strings.Fields(header[1:])
	if len(fields) != 2 {
		return 0, 0, 0, fmt.Errorf("%w: record %q", errs.ErrMalformedDiff, header)
	}
	start, err := parseCount(fields[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: record %q", errs.ErrMalformedDiff, header)
	}
	count, err := parseCount(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: record %q", errs.ErrMalformedDiff, header)
	}

	return header[0], start, count, nil
}

func parseCount(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}

	return strconv.Atoi(s)
}

func isBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ', '\t', '\v', '\f', '\r':
		default:
			return false
		}
	}

	return true
}

package encoding

import (
	"fmt"
	"strings"

	"github.com/arloliu/rcsv/errs"
)

// Quote wraps text in @ delimiters, doubling every @ inside the body so the
// result is a well-formed archive string token.
//
// Parameters:
//   - text: arbitrary text, including empty and multi-line content
//
// Returns:
//   - the quoted token, e.g. Quote("user@host") == "@user@@host@"
func Quote(text string) string {
	return "@" + strings.ReplaceAll(text, "@", "@@") + "@"
}

// Unquote strips the @ delimiters from a string token and collapses doubled
// @ bytes back to single ones. It is the exact inverse of Quote.
//
// Parameters:
//   - token: a quoted token including its delimiters
//
// Returns:
//   - the body text, or errs.ErrMalformedQuote when the token lacks
//     delimiters or carries an unescaped @ inside the body
func Unquote(token string) (string, error) {
	if len(token) < 2 || token[0] != '@' || token[len(token)-1] != '@' {
		return "", fmt.Errorf("%w: missing delimiters", errs.ErrMalformedQuote)
	}

	body := token[1 : len(token)-1]
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		if body[i] != '@' {
			b.WriteByte(body[i])
			continue
		}
		if i+1 >= len(body) || body[i+1] != '@' {
			return "", fmt.Errorf("%w: unescaped @ in body", errs.ErrMalformedQuote)
		}
		b.WriteByte('@')
		i++
	}

	return b.String(), nil
}

// IsQuoted reports whether token is a well-formed quoted string, i.e. whether
// Unquote would accept it.
func IsQuoted(token string) bool {
	_, err := Unquote(token)
	return err == nil
}

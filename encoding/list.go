package encoding

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arloliu/rcsv/errs"
	"github.com/arloliu/rcsv/lexer"
)

// SplitNums decodes a whitespace-separated list of revision numbers, as
// stored in a delta's branches field. An empty or all-whitespace value is an
// empty list; anything that is not a num token fails.
func SplitNums(s string) ([]string, error) {
	lex := lexer.New(s)
	var nums []string
	for {
		num, ok := lex.AcceptNum()
		if !ok {
			break
		}
		nums = append(nums, num)
	}
	if !lex.AtEnd() {
		return nil, fmt.Errorf("%w: expected number at offset %d in list %q", errs.ErrSyntax, lex.Offset(), s)
	}

	return nums, nil
}

// JoinNums encodes revision numbers as the canonical single-space list.
func JoinNums(nums []string) string {
	return strings.Join(nums, " ")
}

// SplitIDs decodes a whitespace-separated list of identifiers, as stored in
// the archive access field.
func SplitIDs(s string) ([]string, error) {
	lex := lexer.New(s)
	var ids []string
	for {
		id, ok := lex.AcceptID()
		if !ok {
			break
		}
		ids = append(ids, id)
	}
	if !lex.AtEnd() {
		return nil, fmt.Errorf("%w: expected identifier at offset %d in list %q", errs.ErrSyntax, lex.Offset(), s)
	}

	return ids, nil
}

// JoinIDs encodes identifiers as the canonical single-space list.
func JoinIDs(ids []string) string {
	return strings.Join(ids, " ")
}

// ParsePairs decodes a name:num pair list, the value layout of the symbols
// and locks fields. Names are ids (a sym is also an id, so symbol tables and
// lock tables share the codec). Later duplicates of a name win, matching a
// sequential read of the field.
func ParsePairs(s string) (map[string]string, error) {
	lex := lexer.New(s)
	pairs := make(map[string]string)
	for {
		name, ok := lex.AcceptID()
		if !ok {
			break
		}
		if err := lex.ExpectColon(); err != nil {
			return nil, err
		}
		num, err := lex.ExpectNum()
		if err != nil {
			return nil, err
		}
		pairs[name] = num
	}
	if !lex.AtEnd() {
		return nil, fmt.Errorf("%w: expected name:num pair at offset %d in %q", errs.ErrSyntax, lex.Offset(), s)
	}

	return pairs, nil
}

// FormatPairs encodes a name:num map as the canonical pair list, sorted by
// name so the same map always serializes to the same string.
func FormatPairs(pairs map[string]string) string {
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ":" + pairs[name]
	}

	return strings.Join(parts, " ")
}

// Package encoding implements the field-level codecs of the RCS history
// archive format.
//
// Archive fields travel in a handful of textual encodings, each with its own
// codec here:
//
//   - At-quoting: free text wrapped in @ delimiters with internal @ doubled
//     (Quote, Unquote).
//   - Timestamps: dotted six-field dates with the historical two-digit year
//     form for 1900-1999 (ParseTimestamp, FormatTimestamp).
//   - Revision numbers: dotted integer tuples with component-wise arithmetic
//     (ParseNum, FormatNum, Increment, Decrement).
//   - Number lists: whitespace-separated num sequences such as branch lists
//     (SplitNums, JoinNums).
//   - Identifier lists: whitespace-separated id sequences such as access
//     lists (SplitIDs, JoinIDs).
//   - Colon pairs: name:num maps such as symbols and locks (ParsePairs,
//     FormatPairs).
//
// All codecs are pure string transforms: no I/O, no shared state, and
// formatting a parsed value reproduces the canonical input.
package encoding

package diff

import (
	"strconv"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/arloliu/rcsv/internal/pool"
)

// SequenceDiffer generates edit scripts in process from a sequence match of
// the two line sets, with no external tool involved. Scripts it produces are
// valid "diff -n" output: records ascend through the original text and each
// append carries its payload inline.
//
// The zero value is ready to use and safe for concurrent use.
type SequenceDiffer struct{}

// NewSequenceDiffer creates an in-process Differ.
func NewSequenceDiffer() *SequenceDiffer {
	return &SequenceDiffer{}
}

// Diff implements Differ.
func (*SequenceDiffer) Diff(old, new string) (string, error) {
	a := SplitLines(old)
	b := SplitLines(new)

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		switch op.Tag {
		case 'e':
			continue
		case 'd', 'r':
			// Delete the replaced or removed original range.
			buf.WriteByte('d')
			buf.WriteString(strconv.Itoa(op.I1 + 1))
			buf.WriteByte(' ')
			buf.WriteString(strconv.Itoa(op.I2 - op.I1))
			buf.WriteByte('\n')
		}
		if op.Tag == 'i' || op.Tag == 'r' {
			// Append the new lines after the end of the original range.
			buf.WriteByte('a')
			buf.WriteString(strconv.Itoa(op.I2))
			buf.WriteByte(' ')
			buf.WriteString(strconv.Itoa(op.J2 - op.J1))
			buf.WriteByte('\n')
			for _, line := range b[op.J1:op.J2] {
				buf.WriteString(line)
				buf.WriteByte('\n')
			}
		}
	}

	return buf.String(), nil
}

package archive

import (
	"bytes"
	"fmt"

	"github.com/arloliu/rcsv/errs"
	"github.com/arloliu/rcsv/internal/pool"
)

// Validate reports the first problem that would prevent serialization:
// a missing required field (head, access, symbols, locks, desc, or any of
// the per-delta fields) wraps errs.ErrMissingField, and a non-empty head
// that names no registered delta wraps errs.ErrUnknownRevision.
func (a *Archive) Validate() error {
	for _, d := range a.order {
		if err := d.validate(); err != nil {
			return err
		}
	}

	switch {
	case !a.head.isSet():
		return fmt.Errorf("%w: head", errs.ErrMissingField)
	case !a.access.isSet():
		return fmt.Errorf("%w: access", errs.ErrMissingField)
	case !a.symbols.isSet():
		return fmt.Errorf("%w: symbols", errs.ErrMissingField)
	case !a.locks.isSet():
		return fmt.Errorf("%w: locks", errs.ErrMissingField)
	case a.desc == "":
		return fmt.Errorf("%w: desc", errs.ErrMissingField)
	}

	if head := a.head.value(); head != "" {
		if _, ok := a.index[head]; !ok {
			return fmt.Errorf("%w: head %s", errs.ErrUnknownRevision, head)
		}
	}

	return nil
}

// Serialize renders the archive in the canonical file layout: the
// administrative phrases, a blank line, the delta headers in insertion
// order, the description, a blank line, and the delta text blocks in the
// same order. Set-empty fields render as "name ;" and absent optional
// fields are omitted.
//
// The whole archive is validated before a single byte is rendered, so a
// failed call returns "" and never partial output.
func (a *Archive) Serialize() (string, error) {
	return a.serialize(false)
}

// serialize renders the archive, leaving the integrity phrase out when
// skipIntegrity is set. That form is what the digest covers, and rendering
// it here keeps Digest a pure read.
func (a *Archive) serialize(skipIntegrity bool) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	writeField(buf, "head", a.head)
	writeField(buf, "branch", a.branch)
	writeField(buf, "access", a.access)
	writeField(buf, "symbols", a.symbols)
	writeField(buf, "locks", a.locks)
	if a.strict {
		writePhrase(buf, "strict", "")
	}
	if !skipIntegrity {
		writeOptional(buf, "integrity", a.integrity)
	}
	writeOptional(buf, "comment", a.comment)
	writeOptional(buf, "expand", a.expand)
	buf.WriteByte('\n')

	for _, d := range a.order {
		d.writeHeader(buf)
	}

	buf.WriteString("desc ")
	buf.WriteString(a.desc)
	buf.WriteString("\n\n")

	for _, d := range a.order {
		d.writeText(buf)
	}

	return buf.String(), nil
}

// writeHeader renders the delta header block: the revision line, the
// metadata phrases, and a trailing blank line.
func (d *Delta) writeHeader(buf *bytes.Buffer) {
	buf.WriteString(d.revision)
	buf.WriteByte('\n')
	writePhrase(buf, "date", d.date)
	writePhrase(buf, "author", d.author)
	writeField(buf, "state", d.state)
	writeField(buf, "branches", d.branches)
	writeField(buf, "next", d.next)
	if d.commitid != "" {
		writePhrase(buf, "commitid", d.commitid)
	}
	buf.WriteByte('\n')
}

// writeText renders the delta text block: the revision line, the log and
// text tokens, and a trailing blank line. log and text take no semicolon.
func (d *Delta) writeText(buf *bytes.Buffer) {
	buf.WriteString(d.revision)
	buf.WriteByte('\n')
	buf.WriteString("log ")
	buf.WriteString(d.log)
	buf.WriteByte('\n')
	buf.WriteString("text ")
	buf.WriteString(d.text)
	buf.WriteString("\n\n")
}

// writeField renders a tracked field as "name value;", or "name ;" when
// set-empty, or nothing when unset.
func writeField(buf *bytes.Buffer, name string, f field) {
	if !f.isSet() {
		return
	}
	writePhrase(buf, name, f.value())
}

// writeOptional renders a quoted optional field, omitting it when absent.
func writeOptional(buf *bytes.Buffer, name, token string) {
	if token == "" {
		return
	}
	writePhrase(buf, name, token)
}

func writePhrase(buf *bytes.Buffer, name, value string) {
	buf.WriteString(name)
	buf.WriteByte(' ')
	buf.WriteString(value)
	buf.WriteString(";\n")
}

package archive

import (
	"strings"

	"github.com/arloliu/rcsv/encoding"
	"github.com/arloliu/rcsv/format"
	"github.com/arloliu/rcsv/lexer"
)

// Parse decodes archive text into an Archive.
//
// The input must be a complete file: the administrative header, the delta
// headers, the description and the delta text blocks, terminated by a
// newline. head and branch values may be empty ("head ;"), the form RCS
// writes for an archive with no revisions.
//
// Failures wrap errs.ErrSyntax with the expected token and byte offset,
// errs.ErrDuplicateRevision for a delta header registered twice, or
// errs.ErrUnknownRevision for a text block whose revision has no header.
//
// The text of the head revision is tagged format.TextFull, every other
// text format.TextDiff.
func Parse(src string) (*Archive, error) {
	lex := lexer.New(src)
	ar := NewArchive()

	if err := parseAdmin(lex, ar); err != nil {
		return nil, err
	}
	if err := parseDeltaHeaders(lex, ar); err != nil {
		return nil, err
	}

	if err := lex.ExpectKeyword("desc"); err != nil {
		return nil, err
	}
	token, err := lex.ExpectString()
	if err != nil {
		return nil, err
	}
	ar.desc = token

	if err := parseDeltaTexts(lex, ar); err != nil {
		return nil, err
	}

	if err := lex.ExpectEnd(); err != nil {
		return nil, err
	}

	return ar, nil
}

func parseAdmin(lex *lexer.Lexer, ar *Archive) error {
	if err := lex.ExpectKeyword("head"); err != nil {
		return err
	}
	head, _ := lex.AcceptNum()
	ar.head.assign(head)
	if err := lex.ExpectSemicolon(); err != nil {
		return err
	}

	if lex.AcceptKeyword("branch") {
		branch, _ := lex.AcceptNum()
		ar.branch.assign(branch)
		if err := lex.ExpectSemicolon(); err != nil {
			return err
		}
	}

	if err := lex.ExpectKeyword("access"); err != nil {
		return err
	}
	var ids []string
	for {
		id, ok := lex.AcceptID()
		if !ok {
			break
		}
		ids = append(ids, id)
	}
	ar.access.assign(encoding.JoinIDs(ids))
	if err := lex.ExpectSemicolon(); err != nil {
		return err
	}

	if err := lex.ExpectKeyword("symbols"); err != nil {
		return err
	}
	// A sym is also an id, so the symbol and lock tables share the scanner.
	symbols, err := scanPairList(lex, lex.AcceptSym)
	if err != nil {
		return err
	}
	ar.symbols.assign(symbols)
	if err := lex.ExpectSemicolon(); err != nil {
		return err
	}

	if err := lex.ExpectKeyword("locks"); err != nil {
		return err
	}
	locks, err := scanPairList(lex, lex.AcceptID)
	if err != nil {
		return err
	}
	ar.locks.assign(locks)
	if err := lex.ExpectSemicolon(); err != nil {
		return err
	}

	if lex.AcceptKeyword("strict") {
		ar.strict = true
		if err := lex.ExpectSemicolon(); err != nil {
			return err
		}
	}

	if lex.AcceptKeyword("integrity") {
		// The value is optional; a bare "integrity ;" leaves the field absent.
		if token, ok := lex.AcceptString(); ok {
			ar.integrity = token
		}
		if err := lex.ExpectSemicolon(); err != nil {
			return err
		}
	}

	if lex.AcceptKeyword("comment") {
		if token, ok := lex.AcceptString(); ok {
			ar.comment = token
		}
		if err := lex.ExpectSemicolon(); err != nil {
			return err
		}
	}

	if lex.AcceptKeyword("expand") {
		if token, ok := lex.AcceptString(); ok {
			ar.expand = token
		}
		if err := lex.ExpectSemicolon(); err != nil {
			return err
		}
	}

	return nil
}

// scanPairList consumes zero or more name:num pairs and returns them as a
// single-space join in input order.
func scanPairList(lex *lexer.Lexer, acceptName func() (string, bool)) (string, error) {
	var pairs []string
	for {
		name, ok := acceptName()
		if !ok {
			break
		}
		if err := lex.ExpectColon(); err != nil {
			return "", err
		}
		num, err := lex.ExpectNum()
		if err != nil {
			return "", err
		}
		pairs = append(pairs, name+":"+num)
	}

	return strings.Join(pairs, " "), nil
}

// parseDeltaHeaders consumes delta header blocks until the next token is
// not a revision number, which is where the desc keyword takes over.
func parseDeltaHeaders(lex *lexer.Lexer, ar *Archive) error {
	for {
		rev, ok := lex.AcceptNum()
		if !ok {
			return nil
		}
		d := NewDelta(rev)
		if err := ar.AddDelta(d); err != nil {
			return err
		}

		if err := lex.ExpectKeyword("date"); err != nil {
			return err
		}
		date, err := lex.ExpectNum()
		if err != nil {
			return err
		}
		d.date = date
		if err := lex.ExpectSemicolon(); err != nil {
			return err
		}

		if err := lex.ExpectKeyword("author"); err != nil {
			return err
		}
		author, err := lex.ExpectID()
		if err != nil {
			return err
		}
		d.author = author
		if err := lex.ExpectSemicolon(); err != nil {
			return err
		}

		if err := lex.ExpectKeyword("state"); err != nil {
			return err
		}
		state, _ := lex.AcceptID()
		d.state.assign(state)
		if err := lex.ExpectSemicolon(); err != nil {
			return err
		}

		if err := lex.ExpectKeyword("branches"); err != nil {
			return err
		}
		var branches []string
		for {
			num, ok := lex.AcceptNum()
			if !ok {
				break
			}
			branches = append(branches, num)
		}
		d.branches.assign(encoding.JoinNums(branches))
		if err := lex.ExpectSemicolon(); err != nil {
			return err
		}

		if err := lex.ExpectKeyword("next"); err != nil {
			return err
		}
		next, _ := lex.AcceptNum()
		d.next.assign(next)
		if err := lex.ExpectSemicolon(); err != nil {
			return err
		}

		if lex.AcceptKeyword("commitid") {
			commitid, err := lex.ExpectID()
			if err != nil {
				return err
			}
			d.commitid = commitid
			if err := lex.ExpectSemicolon(); err != nil {
				return err
			}
		}
	}
}

// parseDeltaTexts consumes delta text blocks, attaching each log and text
// to the delta registered for its revision.
func parseDeltaTexts(lex *lexer.Lexer, ar *Archive) error {
	for {
		rev, ok := lex.AcceptNum()
		if !ok {
			return nil
		}
		d, err := ar.LookupDelta(rev)
		if err != nil {
			return err
		}

		if err := lex.ExpectKeyword("log"); err != nil {
			return err
		}
		token, err := lex.ExpectString()
		if err != nil {
			return err
		}
		d.log = token

		if err := lex.ExpectKeyword("text"); err != nil {
			return err
		}
		token, err = lex.ExpectString()
		if err != nil {
			return err
		}
		d.text = token
		if rev == ar.Head() {
			d.kind = format.TextFull
		} else {
			d.kind = format.TextDiff
		}
	}
}

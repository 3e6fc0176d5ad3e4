// Package diff applies and generates the line-based edit scripts stored in
// RCS history archives.
//
// A script is a sequence of records in the format "diff -n" emits:
//
//	d<line> <count>          delete count lines starting at line
//	a<line> <count>          append the next count script lines after line
//	<payload line> ...       the appended lines, newline terminated
//
// Line numbers are 1-based and always refer to the ORIGINAL text, so records
// arrive in ascending order and the engine tracks a running offset between
// original and edited positions. Apply and ApplyText consume this format;
// generation is delegated to Differ collaborators that promise to produce it:
//
//   - ToolDiffer shells out to the system diff tool in RCS mode, streaming
//     both inputs through pipes.
//   - SequenceDiffer computes the script in process from a difflib sequence
//     match, with no external tool involved.
//
// Texts are treated as newline-terminated line sequences, the archive
// convention; a text ending mid-line cannot be addressed past its last
// complete line.
package diff

package diff

// Differ generates the RCS edit script that transforms old into new. Both
// texts follow the archive convention of newline-terminated lines, and the
// returned script must be accepted by Apply:
//
//	script, err := differ.Diff(old, new)
//	// ApplyText(old, script) == new
type Differ interface {
	Diff(old, new string) (string, error)
}

package archive

// field is a scalar archive field that distinguishes never-set from
// set-to-empty. The distinction is visible in the file format: an absent
// field is omitted entirely while a set-empty field serializes as
// "name ;".
type field struct {
	val string
	set bool
}

func (f *field) assign(val string) {
	f.val = val
	f.set = true
}

func (f *field) clear() {
	f.val = ""
	f.set = false
}

// value returns the stored value, or "" when the field was never set.
func (f field) value() string {
	return f.val
}

func (f field) isSet() bool {
	return f.set
}

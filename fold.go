package lcp

// Folder accumulates a collection prefix one candidate at a time, for
// streams that never materialize as a slice. The zero value is ready to use
// and reports an absent result until the first Add.
type Folder struct {
	acc  string
	seen bool
}

// Add folds one candidate into the running prefix. It returns false once the
// running prefix is empty, at which point further candidates cannot change
// the outcome and the caller may stop feeding the stream.
func (f *Folder) Add(s string) bool {
	if !f.seen {
		f.acc = s
		f.seen = true
	} else if f.acc != "" {
		f.acc = Common(f.acc, s)
	}
	return f.acc != ""
}

// Result returns the folded prefix. ok is false only when nothing was added;
// a present result can still be the empty string.
func (f *Folder) Result() (string, bool) {
	return f.acc, f.seen
}

// Reset returns the Folder to its initial absent state.
func (f *Folder) Reset() {
	f.acc = ""
	f.seen = false
}

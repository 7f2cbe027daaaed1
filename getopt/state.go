package getopt

// State replaces the traditional optarg/optind/optopt/opterr globals with a
// value the caller owns. Independent States scanning independent argv slices
// never interfere, which is what makes the parser reentrant; a single State
// must still be used from one goroutine at a time.
//
// A new scan over a different argv is signaled by resetting OptInd: either
// set it below 1, or assign any value other than the one the last call left
// behind.
type State struct {
	// OptInd is the index of the next argv element to examine (1-based,
	// argv[0] being the program name).
	OptInd int
	// OptErr is opaque. The parser never prints diagnostics, so the field
	// the traditional interface reserved for suppressing them is free to
	// carry the scan cursor between calls instead.
	OptErr int
	// OptOpt is the option character most recently examined, including the
	// offending character after ErrUnknownOpt or ErrMissingArg.
	OptOpt int
	// OptArg is the argument of the matched option, "" when it has none.
	OptArg string
}

// NewState returns a State ready to scan a fresh argv.
func NewState() *State {
	return &State{OptInd: 1, OptErr: cursorInitializer}
}

// The cursor packs two counters into OptErr: the low half remembers the
// OptInd value the last call wrote (so a caller-side reassignment is
// detectable), the high half the character position inside the current argv
// element at which clustered short-option scanning resumes.

func encodeCursor(optIndPrev, nextChar uint16) int {
	return int(uint32(nextChar)<<16 | uint32(optIndPrev))
}

func decodeCursor(slot int) (optIndPrev, nextChar uint16) {
	return uint16(uint32(slot)), uint16(uint32(slot) >> 16)
}

// cursorInitializer marks a State that has not been run yet: previous OptInd
// 1, character cursor at the zero "start fresh" sentinel.
var cursorInitializer = encodeCursor(1, 0)

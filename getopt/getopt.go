// Package getopt is a reentrant implementation of the POSIX
// getopt/getopt_long/getopt_long_only family.
//
// The parser keeps no hidden static storage: everything it needs between
// calls lives in a caller-supplied State, so any number of commands can
// parse their own argv concurrently as long as each scan has its own State.
// Callers invoke one of the entry points in a loop until it returns
// EndOfOptions:
//
//	st := getopt.NewState()
//	for {
//		c := getopt.Getopt(argv, "ab:c", st)
//		if c == getopt.EndOfOptions {
//			break
//		}
//		// handle c, st.OptArg ...
//	}
//
// The parser never prints diagnostics; anomalies are reported through the
// return code and State.OptOpt, and the caller decides what the user sees.
package getopt

import "strings"

const (
	// EndOfOptions is returned when no options remain. The elements from
	// argv[State.OptInd] onward are operands.
	EndOfOptions int = -1
	// ErrUnknownOpt reports an option that is not registered; State.OptOpt
	// holds the offending character.
	ErrUnknownOpt int = '?'
	// ErrMissingArg reports an option whose required argument is missing,
	// when the optstring has a leading colon. Without the leading colon
	// such options are reported as ErrUnknownOpt.
	ErrMissingArg int = ':'
)

func missingArgCode(tbl optTable) int {
	if tbl.leadingColon {
		return ErrMissingArg
	}
	return ErrUnknownOpt
}

// Getopt scans argv for the next short option described by optstring.
func Getopt(argv []string, optstring string, st *State) int {
	return parseNext(argv, optstring, nil, nil, false, st)
}

// GetoptLong scans argv for the next option, matching "--" elements against
// longopts before falling back to short-option scanning. If longindex is
// non-nil it receives the table index of a matched long option.
func GetoptLong(argv []string, optstring string, longopts []LongOption,
	longindex *int, st *State) int {
	return parseNext(argv, optstring, longopts, longindex, false, st)
}

// GetoptLongOnly is GetoptLong with single-dash elements also tried against
// longopts first, falling back to clustered short options on mismatch.
func GetoptLongOnly(argv []string, optstring string, longopts []LongOption,
	longindex *int, st *State) int {
	return parseNext(argv, optstring, longopts, longindex, true, st)
}

func parseNext(argv []string, optstring string, longopts []LongOption,
	longindex *int, longonly bool, st *State) int {
	if st.OptInd < 1 {
		// OptInd below 1 signals a fresh session
		st.OptInd = 1
		st.OptErr = cursorInitializer
		logger.Debugf("reset scan state")
	}

	optIndPrev, nextChar := decodeCursor(st.OptErr)
	if st.OptInd != int(optIndPrev) {
		// the caller repositioned OptInd, e.g. to point at a new argv
		nextChar = 1
		logger.Debugf("OptInd moved from %d to %d, restarting element scan",
			optIndPrev, st.OptInd)
	}

	tbl := compileOptString(optstring)

	ret := EndOfOptions
	if st.OptInd < len(argv) {
		ret, nextChar = scanElement(argv, tbl, longopts, longindex, longonly,
			nextChar, st)
	}

	st.OptErr = encodeCursor(uint16(st.OptInd), nextChar)
	return ret
}

// scanElement classifies argv[st.OptInd] and dispatches to the long-option
// matcher and/or the short-option scanner.
func scanElement(argv []string, tbl optTable, longopts []LongOption,
	longindex *int, longonly bool, nextChar uint16, st *State) (int, uint16) {
	i := st.OptInd
	arg := argv[i]

	if len(arg) < 2 || arg[0] != '-' {
		// Not an option. Scanning stops at the first operand for good;
		// OptInd stays put so the caller finds every remaining element,
		// this one included.
		return EndOfOptions, nextChar
	}

	if arg == "--" {
		// end-of-options marker, consumed exactly once
		st.OptInd = i + 1
		return EndOfOptions, nextChar
	}

	if longopts != nil {
		if r := matchLongOption(argv, i, tbl, longonly, longopts, longindex, st); r != longNoMatch {
			return r, nextChar
		}
		if strings.HasPrefix(arg, "--") {
			// a "--" element cannot be a short-option cluster, so a long
			// mismatch is final even in longonly mode
			logger.Debugf("unknown long option %q", arg)
			st.OptOpt = ErrUnknownOpt
			return ErrUnknownOpt, nextChar
		}
	}

	return scanShort(argv, tbl, nextChar, st)
}

// scanShort resolves the next short option inside argv[st.OptInd], resuming
// at nextChar for clustered options like "-abc".
func scanShort(argv []string, tbl optTable, nextChar uint16, st *State) (int, uint16) {
	i := st.OptInd
	arg := argv[i]

	if nextChar < 1 || int(nextChar) >= len(arg) {
		nextChar = 1
	}

	c := arg[nextChar]
	idx := charToMaskIndex(c)
	st.OptOpt = int(c)

	if !tbl.isRegistered(idx) {
		// unknown option; OptInd keeps pointing at the failing element
		logger.Debugf("unknown option -%c", c)
		return ErrUnknownOpt, nextChar
	}

	if tbl.argRequired(idx) {
		if int(nextChar)+1 < len(arg) {
			// argument is the remainder of this element
			st.OptArg = arg[nextChar+1:]
			st.OptInd = i + 1
			logger.Debugf("processed -%c %s, OptInd %d", c, st.OptArg, st.OptInd)
			return int(c), nextChar
		}
		if i+1 < len(argv) {
			// argument is the next element
			st.OptArg = argv[i+1]
			st.OptInd = i + 2
			logger.Debugf("processed -%c %s, OptInd %d", c, st.OptArg, st.OptInd)
			return int(c), nextChar
		}
		// missing argument; OptInd keeps pointing at the failing element
		logger.Debugf("missing argument for option -%c", c)
		return missingArgCode(tbl), nextChar
	}

	st.OptArg = ""
	if int(nextChar)+1 == len(arg) {
		// cluster exhausted; zero tells the next call to start fresh
		st.OptInd = i + 1
		nextChar = 0
	} else {
		// more clustered options remain in this element
		nextChar++
	}
	logger.Debugf("processed -%c, OptInd %d", c, st.OptInd)
	return int(c), nextChar
}

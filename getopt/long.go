package getopt

import "strings"

// Argument requirements for LongOption, matching the traditional
// no_argument/required_argument/optional_argument values.
const (
	NoArgument = iota
	RequiredArgument
	OptionalArgument
)

// LongOption describes one long option. A table is a slice of LongOption,
// terminated by the end of the slice or by an all-zero entry, whichever
// comes first.
//
// If Flag is non-nil, a match stores Val through it and the parser returns
// 0; otherwise the parser returns Val. When Val doubles as a registered
// short option, its argument requirement must agree with HasArg, or the
// match is reported as a missing argument.
type LongOption struct {
	Name   string
	HasArg int
	Flag   *int
	Val    int
}

func (o *LongOption) isSentinel() bool {
	return o.Name == "" && o.HasArg == 0 && o.Flag == nil && o.Val == 0
}

// longNoMatch tells the driver that no long option matched and the element
// should be handed to the short-option scanner.
const longNoMatch = -1

// matchLongOption resolves argv[idx] against the long-option table. Names
// match exactly: the element with its dashes stripped must equal the name,
// or be the name immediately followed by "=". No abbreviation is attempted.
func matchLongOption(argv []string, idx int, tbl optTable, longonly bool,
	longopts []LongOption, longindex *int, st *State) int {
	arg := argv[idx]

	if strings.HasPrefix(arg, "--") {
		arg = arg[2:]
	} else if longonly {
		arg = arg[1:]
	} else {
		// single-dash elements belong to the short-option scanner
		return longNoMatch
	}

	for i := range longopts {
		opt := &longopts[i]
		if opt.isSentinel() {
			break
		}

		var inline string
		hasInline := false
		switch {
		case arg == opt.Name:
		case len(arg) > len(opt.Name) && arg[len(opt.Name)] == '=' &&
			arg[:len(opt.Name)] == opt.Name:
			inline = arg[len(opt.Name)+1:]
			hasInline = true
		default:
			continue
		}

		shortIdx := -1
		if opt.Val > 0 && opt.Val < 0x80 {
			shortIdx = charToMaskIndex(byte(opt.Val))
		}
		shortRegistered := tbl.isRegistered(shortIdx)

		switch opt.HasArg {
		case NoArgument:
			if shortRegistered && tbl.argRequired(shortIdx) {
				logger.Debugf("long option %q takes no argument but short option -%c requires one",
					opt.Name, opt.Val)
				st.OptOpt = opt.Val
				return missingArgCode(tbl)
			}
			// an "=value" suffix on a no-argument option is ignored
			st.OptArg = ""
			st.OptInd = idx + 1

		case RequiredArgument:
			if shortRegistered && !tbl.argRequired(shortIdx) {
				logger.Debugf("long option %q requires an argument but short option -%c takes none",
					opt.Name, opt.Val)
				st.OptOpt = opt.Val
				return missingArgCode(tbl)
			}
			if hasInline {
				if inline == "" {
					logger.Debugf("missing argument for long option %q", opt.Name)
					st.OptOpt = opt.Val
					return missingArgCode(tbl)
				}
				st.OptArg = inline
				st.OptInd = idx + 1
			} else {
				if idx+1 >= len(argv) {
					logger.Debugf("missing argument for long option %q", opt.Name)
					st.OptOpt = opt.Val
					return missingArgCode(tbl)
				}
				st.OptArg = argv[idx+1]
				st.OptInd = idx + 2
			}

		case OptionalArgument:
			// the argument is recognized only through the "=" form; a
			// following argv element is never consumed
			if shortRegistered && !tbl.argRequired(shortIdx) {
				logger.Debugf("long option %q takes an optional argument but short option -%c takes none",
					opt.Name, opt.Val)
				st.OptOpt = opt.Val
				return missingArgCode(tbl)
			}
			st.OptArg = ""
			if hasInline {
				if inline == "" {
					logger.Debugf("missing argument for long option %q", opt.Name)
					st.OptOpt = opt.Val
					return missingArgCode(tbl)
				}
				st.OptArg = inline
			}
			st.OptInd = idx + 1

		default:
			if longonly {
				return longNoMatch
			}
			logger.Debugf("long option %q has invalid argument requirement %d",
				opt.Name, opt.HasArg)
			st.OptOpt = ErrUnknownOpt
			return ErrUnknownOpt
		}

		if longindex != nil {
			*longindex = i
		}
		if opt.Flag != nil {
			*opt.Flag = opt.Val
			st.OptOpt = 0
			logger.Debugf("processed --%s, flag set to %d", opt.Name, opt.Val)
			return 0
		}
		st.OptOpt = opt.Val
		logger.Debugf("processed --%s, OptInd %d", opt.Name, st.OptInd)
		return opt.Val
	}

	return longNoMatch
}

package main

import (
	"os"
	"strings"

	"github.com/cfriedt/getopt-r/getopt"
	"github.com/cfriedt/getopt-r/log"
	"github.com/sirupsen/logrus"
)

func Usage(exitcode int) {
	println(`
Normalize command-line arguments

Usage:
    getopt-cli [-v] [-l <longopts>] [--] <optstring> [args...]

Arguments:
    optstring                short-option specification, e.g. "ab:c".

Options:
    -v                       trace the scan on stderr.
    -l <longopts>            comma-separated long options; a trailing colon
                             marks a required argument, a double colon an
                             optional one, e.g. "file:,verbose,color::".
`)
	os.Exit(exitcode)
}

// Long options report longBase plus their table index so that they never
// collide with a short option character.
const longBase = 0x100

// parseLongSpec turns "file:,verbose,color::" into a long-option table.
func parseLongSpec(spec string) []getopt.LongOption {
	var opts []getopt.LongOption
	for i, field := range strings.Split(spec, ",") {
		name := field
		hasArg := getopt.NoArgument
		if strings.HasSuffix(name, "::") {
			hasArg = getopt.OptionalArgument
			name = name[:len(name)-2]
		} else if strings.HasSuffix(name, ":") {
			hasArg = getopt.RequiredArgument
			name = name[:len(name)-1]
		}
		if name == "" {
			log.Errorf("invalid long option specification %q", spec)
			Usage(2)
		}
		opts = append(opts, getopt.LongOption{
			Name:   name,
			HasArg: hasArg,
			Val:    longBase + i,
		})
	}
	return opts
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// shortTakesArg reports whether c is registered with an argument in
// optstring.
func shortTakesArg(optstring string, c int) bool {
	return strings.Contains(optstring, string(rune(c))+":")
}

// normalize parses args against optstring and longopts and prints one line
// of quoted, reordered output: matched options first, then "--", then the
// operands. Returns the exit status.
func normalize(optstring string, longopts []getopt.LongOption, args []string) int {
	argv := append([]string{"getopt-cli"}, args...)
	st := getopt.NewState()
	status := 0
	var out []string

	for {
		index := -1
		c := getopt.GetoptLong(argv, optstring, longopts, &index, st)
		if c == getopt.EndOfOptions {
			break
		}

		switch {
		case c >= longBase && c < longBase+len(longopts):
			opt := longopts[c-longBase]
			out = append(out, "--"+opt.Name)
			switch {
			case opt.HasArg == getopt.RequiredArgument:
				out = append(out, quote(st.OptArg))
			case opt.HasArg == getopt.OptionalArgument && st.OptArg != "":
				out = append(out, quote(st.OptArg))
			}

		case c == getopt.ErrMissingArg:
			log.Errorf("option requires an argument: %q", argv[st.OptInd])
			status = 1
			st.OptInd++ // skip the failing element

		case c == getopt.ErrUnknownOpt:
			log.Errorf("unrecognized option in %q", argv[st.OptInd])
			status = 1
			st.OptInd++ // skip the failing element

		default:
			out = append(out, "-"+string(rune(c)))
			if shortTakesArg(optstring, c) {
				out = append(out, quote(st.OptArg))
			}
		}
	}

	out = append(out, "--")
	for _, operand := range argv[st.OptInd:] {
		out = append(out, quote(operand))
	}

	log.Print(strings.Join(out, " "))
	return status
}

func main() {
	argv := os.Args
	st := getopt.NewState()
	longspec := ""

	for done := false; !done; {
		switch c := getopt.Getopt(argv, ":vl:", st); c {
		case getopt.EndOfOptions:
			done = true

		case 'v':
			log.Verbose = true
			tracer := logrus.New()
			tracer.SetOutput(log.Stderr)
			tracer.SetLevel(logrus.DebugLevel)
			getopt.SetLogger(tracer)

		case 'l':
			longspec = st.OptArg

		case getopt.ErrMissingArg:
			log.Errorf("option -%c requires an argument", st.OptOpt)
			Usage(2)

		default:
			log.Errorf("unknown option -%c", st.OptOpt)
			Usage(2)
		}
	}

	rest := argv[st.OptInd:]
	if len(rest) == 0 {
		log.Error("missing optstring argument")
		Usage(2)
	}

	var longopts []getopt.LongOption
	if longspec != "" {
		longopts = parseLongSpec(longspec)
	}
	log.Debug("normalizing %d arguments with optstring %q and %d long options",
		len(rest)-1, rest[0], len(longopts))

	os.Exit(normalize(rest[0], longopts, rest[1:]))
}

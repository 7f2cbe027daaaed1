package getopt

// https://pubs.opengroup.org/onlinepubs/9699919799/basedefs/V1_chap12.html#tag_12_02
//
// > Each option name should be a single alphanumeric character (the alnum
// > character classification). The -W (capital-W) option shall be reserved
// > for vendor options. Multi-digit options should not be allowed.
//
// That restricts the option alphabet to 62 symbols, so a registration table
// fits in a pair of 64-bit masks.

// charToMaskIndex maps an option character to its bit position:
// a..z -> 0..25, A..Z -> 26..51, 0..9 -> 52..61. Returns -1 for any other
// character.
func charToMaskIndex(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 26
	case c >= '0' && c <= '9':
		return int(c-'0') + 52
	}
	return -1
}

// optTable is the compiled form of an optstring: which options are
// registered, which of them take an argument, and whether the optstring
// started with a colon.
type optTable struct {
	registered   uint64
	requiresArg  uint64
	leadingColon bool
}

func (t optTable) isRegistered(idx int) bool {
	return idx >= 0 && t.registered&(1<<idx) != 0
}

func (t optTable) argRequired(idx int) bool {
	return idx >= 0 && t.requiresArg&(1<<idx) != 0
}

// compileOptString builds an optTable from an optstring. It never fails:
// characters outside the option alphabet are skipped, and re-registering a
// character is a no-op, so a later "a:" cannot add an argument to an "a"
// registered earlier.
func compileOptString(optstring string) optTable {
	var tbl optTable

	for i := 0; i < len(optstring); i++ {
		c := optstring[i]
		if i == 0 && c == ':' {
			tbl.leadingColon = true
			continue
		}

		idx := charToMaskIndex(c)
		if idx < 0 {
			logger.Debugf("ignoring invalid optstring character %q", c)
			continue
		}
		if tbl.registered&(1<<idx) != 0 {
			// already registered
			continue
		}

		tbl.registered |= 1 << idx
		if i+1 < len(optstring) && optstring[i+1] == ':' {
			tbl.requiresArg |= 1 << idx
			i++
		}
	}

	return tbl
}

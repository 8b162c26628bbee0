package command

import "strings"

// ParseInput splits line on whitespace into a lower-cased command name and
// its arguments. A blank line yields an empty name.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// exactArgs returns ErrArgumentCount unless args has exactly n elements.
func exactArgs(args []string, n int) error {
	if len(args) != n {
		return ErrArgumentCount
	}
	return nil
}

// firstArg returns args[0], or ErrMissingArgument when args is empty.
// Extra arguments are ignored.
func firstArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrMissingArgument
	}
	return args[0], nil
}

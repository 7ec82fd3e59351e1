package cli

import (
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		fs, configPath := newFlagSet(cmd, stderr)
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		_, path, err := loadConfig(*configPath)
		switch {
		case err != nil:
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		case path == "":
			fmt.Fprintln(stdout, "No .trivia.yml found; defaults are valid")
		default:
			fmt.Fprintf(stdout, "Config OK: %s\n", path)
		}
		return ExitOK
	}
}

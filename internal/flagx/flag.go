// Package flagx splits a command line between the global config loader and
// the command that runs after it.
package flagx

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// ConfigFileFlags are the flags naming a JSON config file.
var ConfigFileFlags = []string{"-c", "-config"}

// FilterArgs returns the arguments that are allowed flags, together with
// their values.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.json
//  2. Flag and value combined with '=':      --config=conf.json
//
// A separate value is only taken when it does not start with '-', unless it
// is a negative number such as "-1".
func FilterArgs(args []string, allowedFlags []string) []string {
	kept, _ := split(args, allowedFlags)
	return kept
}

// StripArgs is the complement of FilterArgs: it returns every argument
// FilterArgs would drop, in order.
//
//	StripArgs([]string{"-w", "4", "hash", "-user", "bob"}, []string{"-w"})
//	// → []string{"hash", "-user", "bob"}
func StripArgs(args []string, allowedFlags []string) []string {
	_, rest := split(args, allowedFlags)
	return rest
}

func split(args []string, allowedFlags []string) (kept, rest []string) {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	// both non-nil so callers can range or compare without nil checks
	kept = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				kept = append(kept, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			rest = append(rest, arg)
			continue
		}

		kept = append(kept, arg)
		if i+1 < len(args) && isValue(args[i+1]) {
			kept = append(kept, args[i+1])
			i++
		}
	}

	return kept, rest
}

func isValue(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return true
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// JsonConfigFlags returns the config file path given with -c or -config in
// os.Args, or "" when neither is present. Other arguments are ignored.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], ConfigFileFlags)

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}

// Package flagx lets each configuration layer parse only the flags it owns.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps the allowed flags of args, together with their values,
// in their original order. Parsing stops at a bare "--".
//
// "-f value" and "-f=value" are both accepted. The next argument is taken
// as the value only when it does not look like a flag itself.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = true
	}

	out := []string{}
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			break
		}
		name, inline := splitFlag(args[i])
		if !allowed[name] {
			continue
		}
		out = append(out, args[i])
		if inline {
			continue
		}
		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			out = append(out, args[next])
			i = next
		}
	}
	return out
}

// splitFlag returns the flag name of arg and whether arg carries its value.
func splitFlag(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false
	}
	if name, _, ok := strings.Cut(arg, "="); ok {
		return name, true
	}
	return arg, false
}

// ConfigPath is the JSON config path given with -c or -config, or "".
func ConfigPath(args []string) string {
	return lookup(args, "", "c", "config")
}

// EnvFile is the dotenv path given with -env; ".env" when absent.
func EnvFile(args []string) string {
	return lookup(args, ".env", "env")
}

// lookup parses a single string flag known under several names. The last
// occurrence wins.
func lookup(args []string, def string, names ...string) string {
	fs := flag.NewFlagSet("flagx", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	value := def
	dashed := make([]string, len(names))
	for i, n := range names {
		fs.StringVar(&value, n, def, "")
		dashed[i] = "-" + n
	}
	_ = fs.Parse(FilterArgs(args, dashed))
	return value
}

package browse

import (
	"regexp"
	"strings"
)

// Filter is a compiled glob-style matcher. Patterns are translated to
// regular expressions once, up front; matching only ever sees the
// compiled form.
type Filter struct {
	re *regexp.Regexp
}

// CompileFilters translates a list of glob-like patterns (supporting `*`,
// `?`, and `[...]` character classes) into compiled matchers.
func CompileFilters(patterns []string) ([]Filter, error) {
	filters := make([]Filter, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(globToRegexp(p))
		if err != nil {
			return nil, err
		}
		filters = append(filters, Filter{re: re})
	}
	return filters, nil
}

// Match reports whether any filter matches name. An empty filter list
// matches everything.
func Match(filters []Filter, name string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if f.re.MatchString(name) {
			return true
		}
	}
	return false
}

// globToRegexp translates a shell glob into an anchored regular
// expression: `*` becomes `.*`, `?` becomes `.`, `[...]` character
// classes pass through, and all other regex metacharacters are escaped.
func globToRegexp(glob string) string {
	var b strings.Builder
	b.WriteByte('^')

	i := 0
	for i < len(glob) {
		c := glob[i]
		switch c {
		case '*':
			b.WriteString(".*")
			i++
		case '?':
			b.WriteByte('.')
			i++
		case '[':
			end := strings.IndexByte(glob[i:], ']')
			if end < 0 {
				b.WriteString(regexp.QuoteMeta(string(c)))
				i++
				continue
			}
			b.WriteString(glob[i : i+end+1])
			i += end + 1
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
			i++
		}
	}

	b.WriteByte('$')
	return b.String()
}

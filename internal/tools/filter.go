package tools

import "strings"

// Filter is the set of tool names excluded from registration. It is computed
// once at startup from the FOLK_FILTERED_TOOLS configuration value and never
// mutated afterwards: a filtered tool is simply never registered, so it can
// neither be listed nor invoked for the lifetime of the process.
type Filter map[string]struct{}

// ParseFilter splits a comma-separated list of tool names, trimming
// surrounding whitespace and dropping empty entries. An empty or unset value
// yields the empty set.
func ParseFilter(list string) Filter {
	filter := Filter{}
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		filter[name] = struct{}{}
	}
	return filter
}

// IsFiltered reports whether name is an exact, case-sensitive member of the
// set.
func (f Filter) IsFiltered(name string) bool {
	_, ok := f[name]
	return ok
}

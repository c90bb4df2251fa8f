package domain

// Exclusions is a set of directory names that a scan must not descend into.
type Exclusions map[string]struct{}

// DefaultExcludedDirs are skipped when no exclusions are configured.
var DefaultExcludedDirs = []string{".git", "node_modules"}

// NewExclusions builds an exclusion set from directory names.
func NewExclusions(names ...string) Exclusions {
	e := make(Exclusions, len(names))
	for _, name := range names {
		if name != "" {
			e[name] = struct{}{}
		}
	}
	return e
}

// Excludes reports whether a directory with the given base name is skipped.
func (e Exclusions) Excludes(name string) bool {
	_, ok := e[name]
	return ok
}

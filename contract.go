package searchpath

// Environ resolves named variables from an environment.
//
// Types implementing this interface can be injected with WithEnviron() to keep
// searches hermetic (tests, captured environments, remote environments).
type Environ interface {
	// Lookup returns the value of name together with two flags: present
	// reports whether the variable exists at all, defined reports whether it
	// carries a value. A process environment can never hold a variable that
	// is present but undefined; other environments (and test doubles) can,
	// and the search reports the two resolution failures distinctly.
	Lookup(name string) (value string, defined, present bool)
}

// ListSplitter splits a path-list string into its ordered directory entries.
//
// Implementations must map an empty list to a single blank entry: a
// defined-but-empty path list means "search the current directory", not
// "search nowhere".
type ListSplitter interface {
	Split(list string) []string
}

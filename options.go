package searchpath

// DefaultVariable is the platform's primary executable-search variable.
const DefaultVariable = "PATH"

// ExecutableFilter selects whether candidates must be executable by the
// current process to count as matches.
type ExecutableFilter int

const (
	// ExecutableAuto requires the executable bit only when the search reads
	// the default executable-search variable. Raw-list searches never
	// require it under ExecutableAuto.
	ExecutableAuto ExecutableFilter = iota
	// ExecutableRequired always requires the executable bit.
	ExecutableRequired
	// ExecutableAny accepts any candidate that exists.
	ExecutableAny
)

// Options configures a single search.
//
// The zero value searches the default executable-search variable for
// executable files directly under each listed directory.
type Options struct {
	Variable   string           // Path-list variable name (defaults to DefaultVariable)
	Executable ExecutableFilter // Executable-bit filtering (defaults to ExecutableAuto)
	Subdir     string           // Relative segment between each directory and the filename (defaults to ".")
}

// config is a fully populated search configuration.
//
// All conditional default computation happens in Options.resolve, before the
// search loop runs; the loop itself never consults a default.
type config struct {
	variable   string
	executable bool
	subdir     string
}

// resolve fills in defaults, producing the configuration the search runs
// with. fromList marks raw-list searches, which have no variable to resolve.
func (o Options) resolve(fromList bool) config {
	c := config{
		variable: o.Variable,
		subdir:   o.Subdir,
	}
	if c.variable == "" {
		c.variable = DefaultVariable
	}
	if c.subdir == "" {
		c.subdir = "."
	}

	switch o.Executable {
	case ExecutableRequired:
		c.executable = true
	case ExecutableAny:
		c.executable = false
	default:
		c.executable = !fromList && c.variable == DefaultVariable
	}

	return c
}

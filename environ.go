package searchpath

import "os"

// OSEnviron reads variables from the process environment.
type OSEnviron struct{}

// Lookup implements Environ on top of os.LookupEnv.
//
// A process environment cannot hold a present-but-undefined variable, so
// defined always equals present.
func (OSEnviron) Lookup(name string) (string, bool, bool) {
	value, ok := os.LookupEnv(name)

	return value, ok, ok
}

// MapEnviron is an in-memory Environ.
//
// A key mapping to nil models a variable that is present but carries no
// value, which a process environment cannot express.
type MapEnviron map[string]*string

// Lookup implements Environ.
func (m MapEnviron) Lookup(name string) (string, bool, bool) {
	value, ok := m[name]
	if !ok {
		return "", false, false
	}
	if value == nil {
		return "", false, true
	}

	return *value, true, true
}

// Set stores a defined value for name.
func (m MapEnviron) Set(name, value string) {
	m[name] = &value
}

// SetUndefined marks name as present without a value.
func (m MapEnviron) SetUndefined(name string) {
	m[name] = nil
}

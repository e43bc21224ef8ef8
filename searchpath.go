// Package searchpath locates a named file within the directories listed in a
// path-list environment variable (eg, PATH), in list order.
package searchpath

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	searchpatherrors "github.com/leodido/searchpath/errors"
)

// Searcher runs path-list searches against an environment and a filesystem.
//
// Construct it with New. Methods are safe for concurrent use as long as the
// injected environment and filesystem are safe for concurrent reads (the
// defaults, the process environment and the OS filesystem, are).
type Searcher struct {
	env    Environ
	fsys   afero.Fs
	split  ListSplitter
	logger *zap.Logger
}

// SearcherOption customizes a Searcher at construction time.
type SearcherOption func(*Searcher)

// WithEnviron sets the environment the searcher resolves path-list variables
// from. Defaults to the process environment.
func WithEnviron(env Environ) SearcherOption {
	return func(s *Searcher) {
		s.env = env
	}
}

// WithFs sets the filesystem candidates are probed on. Defaults to the OS
// filesystem.
func WithFs(fsys afero.Fs) SearcherOption {
	return func(s *Searcher) {
		s.fsys = fsys
	}
}

// WithSplitter sets how raw path-list strings are split into directory
// entries. Defaults to PlatformSplitter.
func WithSplitter(split ListSplitter) SearcherOption {
	return func(s *Searcher) {
		s.split = split
	}
}

// WithLogger enables debug tracing of the probe loop. Defaults to a no-op
// logger.
func WithLogger(logger *zap.Logger) SearcherOption {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// New creates a Searcher.
func New(opts ...SearcherOption) *Searcher {
	s := &Searcher{
		env:    OSEnviron{},
		fsys:   afero.NewOsFs(),
		split:  PlatformSplitter{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// First returns the first match for filename across the directories listed in
// the configured path-list variable.
//
// The second result reports whether any directory matched: finding nothing is
// not an error. Errors only signal that the search could not be attempted at
// all (absolute filename, unresolvable variable).
func (s *Searcher) First(filename string, opts Options) (string, bool, error) {
	matches, err := s.searchEnv(filename, opts, true)
	if err != nil || len(matches) == 0 {
		return "", false, err
	}

	return matches[0], true, nil
}

// All returns every match for filename across the directories listed in the
// configured path-list variable, in list order. The result is empty when
// nothing matched.
func (s *Searcher) All(filename string, opts Options) ([]string, error) {
	return s.searchEnv(filename, opts, false)
}

// FirstInList behaves like First but searches the given path-list string
// directly, without consulting the environment. It never returns the
// missing/undefined-variable errors.
func (s *Searcher) FirstInList(filename, list string, opts Options) (string, bool, error) {
	matches, err := s.searchList(filename, list, opts, true)
	if err != nil || len(matches) == 0 {
		return "", false, err
	}

	return matches[0], true, nil
}

// AllInList behaves like All but searches the given path-list string
// directly, without consulting the environment.
func (s *Searcher) AllInList(filename, list string, opts Options) ([]string, error) {
	return s.searchList(filename, list, opts, false)
}

func (s *Searcher) searchEnv(filename string, opts Options, firstOnly bool) ([]string, error) {
	c := opts.resolve(false)
	if err := checkFilename(filename); err != nil {
		return nil, err
	}

	list, err := s.resolveList(c.variable)
	if err != nil {
		return nil, err
	}

	return s.search(filename, list, c, firstOnly), nil
}

func (s *Searcher) searchList(filename, list string, opts Options, firstOnly bool) ([]string, error) {
	c := opts.resolve(true)
	if err := checkFilename(filename); err != nil {
		return nil, err
	}

	return s.search(filename, list, c, firstOnly), nil
}

// resolveList reads the raw path-list string from the environment.
//
// A present variable holding an empty string is valid: it resolves to a list
// whose single blank entry means the current directory.
func (s *Searcher) resolveList(variable string) (string, error) {
	value, defined, present := s.env.Lookup(variable)
	if !present {
		return "", searchpatherrors.NewMissingVariableError(variable)
	}
	if !defined {
		return "", searchpatherrors.NewUndefinedVariableError(variable)
	}

	return value, nil
}

// search is the single-pass core: split, substitute blank entries, join,
// probe, collect. It runs only after every precondition has been checked.
func (s *Searcher) search(filename, list string, c config, firstOnly bool) []string {
	var matches []string
	for _, dir := range s.split.Split(list) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, c.subdir, filename)
		info, err := s.fsys.Stat(candidate)
		if err != nil {
			// A candidate that cannot be probed is not a match; one bad
			// directory entry must not abort the whole search.
			s.logger.Debug("candidate does not exist", zap.String("candidate", candidate))

			continue
		}
		if c.executable && !isExecutable(info) {
			s.logger.Debug("candidate is not executable", zap.String("candidate", candidate))

			continue
		}

		s.logger.Debug("candidate matches", zap.String("candidate", candidate))
		matches = append(matches, candidate)
		if firstOnly {
			break
		}
	}

	return matches
}

func checkFilename(filename string) error {
	if filepath.IsAbs(filename) {
		return searchpatherrors.NewAbsoluteFilenameError(filename)
	}

	return nil
}

func isExecutable(info fs.FileInfo) bool {
	return !info.IsDir() && info.Mode()&0111 != 0
}

var defaultSearcher = New()

// First searches the process environment and the OS filesystem with a default
// Searcher.
func First(filename string, opts Options) (string, bool, error) {
	return defaultSearcher.First(filename, opts)
}

// All searches the process environment and the OS filesystem with a default
// Searcher.
func All(filename string, opts Options) ([]string, error) {
	return defaultSearcher.All(filename, opts)
}

// FirstInList searches the given path-list string on the OS filesystem with a
// default Searcher.
func FirstInList(filename, list string, opts Options) (string, bool, error) {
	return defaultSearcher.FirstInList(filename, list, opts)
}

// AllInList searches the given path-list string on the OS filesystem with a
// default Searcher.
func AllInList(filename, list string, opts Options) ([]string, error) {
	return defaultSearcher.AllInList(filename, list, opts)
}

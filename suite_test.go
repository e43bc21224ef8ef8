package searchpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

type searchpathSuite struct {
	suite.Suite

	fsys afero.Fs
}

func TestSearchpathSuite(t *testing.T) {
	suite.Run(t, new(searchpathSuite))
}

func (suite *searchpathSuite) SetupTest() {
	// Fresh in-memory filesystem before each test
	suite.fsys = afero.NewMemMapFs()
}

// writeFile creates path (and its parent directories) with the given mode
// on the fixture filesystem.
func (suite *searchpathSuite) writeFile(path string, mode os.FileMode) {
	suite.Require().NoError(suite.fsys.MkdirAll(filepath.Dir(path), 0o755))
	suite.Require().NoError(afero.WriteFile(suite.fsys, path, []byte("content"), mode))
	// MemMapFs does not reliably honor the create mode
	suite.Require().NoError(suite.fsys.Chmod(path, mode))
}

// newSearcher builds a Searcher over the fixture filesystem and the given
// in-memory environment.
func (suite *searchpathSuite) newSearcher(env Environ) *Searcher {
	return New(WithEnviron(env), WithFs(suite.fsys), WithSplitter(ColonSplitter{}))
}

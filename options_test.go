package searchpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsResolve_ZeroValue(t *testing.T) {
	c := Options{}.resolve(false)

	assert.Equal(t, DefaultVariable, c.variable)
	assert.Equal(t, ".", c.subdir)
	assert.True(t, c.executable, "searching the default variable requires the executable bit")
}

func TestOptionsResolve_NonDefaultVariable(t *testing.T) {
	c := Options{Variable: "MYPATH"}.resolve(false)

	assert.Equal(t, "MYPATH", c.variable)
	assert.False(t, c.executable, "only the default executable-search variable implies filtering")
}

func TestOptionsResolve_RawListNeverAutoFilters(t *testing.T) {
	c := Options{}.resolve(true)

	assert.False(t, c.executable, "raw-list searches have no variable to key the default off")
}

func TestOptionsResolve_ExplicitFilterWins(t *testing.T) {
	assert.True(t, Options{Variable: "MYPATH", Executable: ExecutableRequired}.resolve(false).executable)
	assert.True(t, Options{Executable: ExecutableRequired}.resolve(true).executable)
	assert.False(t, Options{Executable: ExecutableAny}.resolve(false).executable)
}

func TestOptionsResolve_Subdir(t *testing.T) {
	c := Options{Subdir: "bin"}.resolve(false)

	assert.Equal(t, "bin", c.subdir)
}

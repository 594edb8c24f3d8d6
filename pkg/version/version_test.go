package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
}

func TestParse(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	version = "v1.4.2"
	v, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v.Major())
	assert.Equal(t, uint64(4), v.Minor())
	assert.False(t, IsPrerelease())

	version = "v2.0.0-rc.1"
	assert.True(t, IsPrerelease())

	version = "not-a-version"
	_, err = Parse()
	require.Error(t, err)
	assert.True(t, IsPrerelease())
}

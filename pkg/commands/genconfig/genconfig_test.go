package genconfig

import (
	"testing"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/arthur-debert/wtlaunch/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig_Print(t *testing.T) {
	res, err := GenConfig(GenConfigOptions{})
	require.NoError(t, err)
	assert.False(t, res.Written)
	assert.Contains(t, res.Content, "[shortcuts]")
	assert.Contains(t, res.Content, "wt.exe")
}

func TestGenConfig_Write(t *testing.T) {
	fs := filesystem.NewMemory()
	opts := GenConfigOptions{Write: true, Path: "/home/me/.config/wtlaunch/config.toml", FileSystem: fs}

	res, err := GenConfig(opts)
	require.NoError(t, err)
	assert.True(t, res.Written)

	data, err := fs.ReadFile(opts.Path)
	require.NoError(t, err)
	assert.Equal(t, res.Content, string(data))

	_, err = GenConfig(opts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	opts.Force = true
	_, err = GenConfig(opts)
	assert.NoError(t, err)
}

package registry

import (
	"runtime"
	"testing"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, `Software\Classes\*\shell`, Join(`Software\Classes`, `*`, `shell`))
	assert.Equal(t, `a\b`, Join(`\a\`, "", `b\`))
	assert.Equal(t, "", Join())
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.CreateKey(`Software\Classes\Directory\shell\Open Here\command`))

	exists, err := s.Exists(`software\classes\directory\SHELL\open here`)
	require.NoError(t, err)
	assert.True(t, exists, "lookups ignore case")

	keys, err := s.SubKeys(`Software\Classes\Directory\shell`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Open Here"}, keys)

	require.NoError(t, s.SetString(`Software\Classes\Directory\shell\Open Here\command`, "", "wt.exe"))
	v, ok, err := s.GetString(`Software\Classes\Directory\shell\Open Here\command`, "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "wt.exe", v)

	_, ok, err = s.GetString(`Software\Classes\Directory\shell\Open Here`, "Icon")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.DeleteTree(`Software\Classes\Directory\shell\Open Here`))
	keys, err = s.SubKeys(`Software\Classes\Directory\shell`)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMemoryStore_MissingKeys(t *testing.T) {
	s := NewMemoryStore()

	keys, err := s.SubKeys(`Software\Classes\Drive\shell`)
	require.NoError(t, err)
	assert.Empty(t, keys)

	assert.NoError(t, s.DeleteTree(`Software\Classes\Drive\shell\Nope`))

	err = s.SetString(`Software\Nope`, "", "x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrRegistry))
}

func TestMemoryStore_RejectsRoot(t *testing.T) {
	s := NewMemoryStore()
	assert.True(t, errors.IsErrorCode(s.CreateKey(""), errors.ErrInvalidInput))
	assert.True(t, errors.IsErrorCode(s.DeleteTree(`\`), errors.ErrInvalidInput))
}

func TestNewSystemStore(t *testing.T) {
	store, err := NewSystemStore()
	if runtime.GOOS == "windows" {
		require.NoError(t, err)
		assert.NotNil(t, store)
		return
	}
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupported))
}

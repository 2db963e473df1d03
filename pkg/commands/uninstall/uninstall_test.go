package uninstall

import (
	"context"
	"testing"

	"github.com/arthur-debert/wtlaunch/pkg/registry"
	"github.com/arthur-debert/wtlaunch/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUninstall(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	reg := env.Source().Shortcuts(env.Store, "wtlaunch.exe")

	_, err := reg.Install(env.Settings(), "Open %P Terminal Here", nil)
	require.NoError(t, err)

	root := env.Config.Shortcuts.Roots[2]
	foreign := registry.Join(root, "Open Beta Terminal Here")
	require.NoError(t, env.Store.CreateKey(registry.Join(foreign, "command")))

	res, err := Uninstall(context.Background(), UninstallOptions{Source: env.Source(), Store: env.Store})
	require.NoError(t, err)
	assert.Len(t, res.Removed, 2*len(env.Config.Shortcuts.Roots))

	keys, err := env.Store.SubKeys(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"Open Beta Terminal Here"}, keys)
	env.AssertClean()
}

func TestUninstall_NothingInstalled(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	res, err := Uninstall(context.Background(), UninstallOptions{Source: env.Source(), Store: env.Store})
	require.NoError(t, err)
	assert.Empty(t, res.Removed)
	assert.Equal(t, testutil.SettingsJSON, env.RawSettings())
}

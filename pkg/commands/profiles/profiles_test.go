package profiles

import (
	"testing"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/arthur-debert/wtlaunch/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProfiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	res, err := ListProfiles(ProfilesOptions{Source: env.Source()})
	require.NoError(t, err)
	assert.Equal(t, env.SettingsPath, res.SettingsPath)
	assert.False(t, res.InFlight)
	assert.Equal(t, []ProfileInfo{
		{ID: testutil.AlphaID, Name: "Alpha", Icon: `C:\icons\alpha.png`},
		{Name: "Gamma"},
	}, res.Profiles)
}

func TestListProfiles_All(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	res, err := ListProfiles(ProfilesOptions{Source: env.Source(), All: true})
	require.NoError(t, err)
	require.Len(t, res.Profiles, 3)
	assert.Equal(t, ProfileInfo{ID: testutil.BetaID, Name: "Beta", Hidden: true, Default: true}, res.Profiles[1])
}

func TestListProfiles_Legacy(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteSettings(testutil.LegacyJSON)

	res, err := ListProfiles(ProfilesOptions{Source: env.Source()})
	require.NoError(t, err)
	assert.Equal(t, []ProfileInfo{{ID: "A", Name: "Alpha", Default: true}}, res.Profiles)
}

func TestListProfiles_ParseError(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteSettings(`{"profiles": [`)

	_, err := ListProfiles(ProfilesOptions{Source: env.Source()})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

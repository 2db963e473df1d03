package terminalconfig

import (
	"strings"
	"testing"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_CurrentSchema(t *testing.T) {
	cfg, err := Parse([]byte(settingsJSON))
	require.NoError(t, err)

	assert.Equal(t, "{61c54bbd-c2c6-5271-96e7-009a87ff44bf}", cfg.Globals.DefaultProfileID)
	require.Len(t, cfg.Profiles, 3)

	assert.Equal(t, "Windows PowerShell", cfg.Profiles[0].Name)
	assert.Empty(t, cfg.Profiles[0].Icon)
	assert.Equal(t, "Command Prompt", cfg.Profiles[1].Name)
	assert.Contains(t, cfg.Profiles[1].Icon, "ProfileIcons")
	assert.True(t, cfg.Profiles[2].Hidden)
	assert.Equal(t, 2, cfg.Profiles[2].Index)
	assert.False(t, cfg.InFlight())
}

func TestParse_LegacySchema(t *testing.T) {
	cfg, err := Parse([]byte(legacyJSON))
	require.NoError(t, err)

	assert.Equal(t, "A", cfg.Globals.DefaultProfileID)
	require.Len(t, cfg.Profiles, 2)
	assert.Equal(t, "Alpha", cfg.Profiles[0].Name)
	assert.True(t, cfg.Profiles[1].Hidden)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"array root", "[]"},
		{"truncated", `{"profiles": [`},
		{"profiles is a string", `{"profiles": "nope"}`},
		{"profile is not an object", `{"profiles": [1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
		})
	}
}

func TestParse_NoProfiles(t *testing.T) {
	cfg, err := Parse([]byte(`{"profiles": {"defaults": {}}}`))
	require.NoError(t, err)
	assert.Empty(t, cfg.Profiles)
}

func TestMarshal_RoundTripIsByteIdentical(t *testing.T) {
	for name, raw := range map[string]string{
		"current": settingsJSON,
		"legacy":  legacyJSON,
		"marker":  `{"wintermRunnerModified": true, "profiles": []}`,
		"minimal": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Parse([]byte(raw))
			require.NoError(t, err)

			out, err := cfg.Marshal()
			require.NoError(t, err)
			assert.Equal(t, raw, string(out))
		})
	}
}

func TestMarshal_PersistentLaunchEdit(t *testing.T) {
	cfg, err := Parse([]byte(settingsJSON))
	require.NoError(t, err)

	p, ok := FindProfile(cfg, "command prompt")
	require.True(t, ok)
	p.StartingDirectory = StartingDirectoryPlaceholder
	cfg.SetDefaultProfile(p)

	out, err := cfg.Marshal()
	require.NoError(t, err)

	// comments, unknown keys and the dynamic profile survive
	text := string(out)
	assert.Contains(t, text, "// This file was initially generated by Windows Terminal")
	assert.Contains(t, text, "// Make changes here to the powershell.exe profile.")
	assert.Contains(t, text, `"source": "Windows.Terminal.Azure"`)
	assert.Contains(t, text, `"copyOnSelect": false`)
	assert.Contains(t, text, `"defaultProfile": "{0caa0dad-35be-5f56-a8ff-afceeeaa6101}"`)

	reparsed, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, "{0caa0dad-35be-5f56-a8ff-afceeeaa6101}", reparsed.Globals.DefaultProfileID)
	assert.Equal(t, "%__CD__%", reparsed.Profiles[1].StartingDirectory)
	assert.Empty(t, reparsed.Profiles[0].StartingDirectory)
	assert.Empty(t, reparsed.Profiles[2].StartingDirectory)
}

func TestMarshal_OnlyChangedFieldsDiffer(t *testing.T) {
	cfg, err := Parse([]byte(legacyJSON))
	require.NoError(t, err)

	cfg.Profiles[0].StartingDirectory = StartingDirectoryPlaceholder
	cfg.SetDefaultProfile(cfg.Profiles[1])

	out, err := cfg.Marshal()
	require.NoError(t, err)

	want := strings.Replace(legacyJSON, `"defaultProfile": "A"`, `"defaultProfile": "B"`, 1)
	want = strings.Replace(want, `"fontFace": "Cascadia Code"}`, `"fontFace": "Cascadia Code", "startingDirectory": "%__CD__%"}`, 1)
	assert.Equal(t, want, string(out))
}

func TestMarshal_ReplacesExistingStartingDirectory(t *testing.T) {
	raw := `{"profiles": [{"guid": "A", "name": "Alpha", "startingDirectory": "C:\\Users"}]}`
	cfg, err := Parse([]byte(raw))
	require.NoError(t, err)

	cfg.Profiles[0].StartingDirectory = StartingDirectoryPlaceholder
	out, err := cfg.Marshal()
	require.NoError(t, err)

	assert.Equal(t, `{"profiles": [{"guid": "A", "name": "Alpha", "startingDirectory": "%__CD__%"}]}`, string(out))
}

func TestMarshal_DefaultProfileInsertedWhenMissing(t *testing.T) {
	t.Run("current schema", func(t *testing.T) {
		cfg, err := Parse([]byte(`{"profiles": {"list": [{"guid": "A", "name": "Alpha"}]}}`))
		require.NoError(t, err)
		cfg.SetDefaultProfile(cfg.Profiles[0])

		out, err := cfg.Marshal()
		require.NoError(t, err)
		assert.Equal(t, `{"profiles": {"list": [{"guid": "A", "name": "Alpha"}]}, "defaultProfile": "A"}`, string(out))
	})

	t.Run("legacy globals", func(t *testing.T) {
		cfg, err := Parse([]byte(`{"globals": {}, "profiles": [{"guid": "A", "name": "Alpha"}]}`))
		require.NoError(t, err)
		cfg.SetDefaultProfile(cfg.Profiles[0])

		out, err := cfg.Marshal()
		require.NoError(t, err)
		assert.Equal(t, `{"globals": {"defaultProfile": "A"}, "profiles": [{"guid": "A", "name": "Alpha"}]}`, string(out))
	})
}

func TestMarshal_Marker(t *testing.T) {
	raw := `{"profiles": []}`
	cfg, err := Parse([]byte(raw))
	require.NoError(t, err)

	flagged, err := cfg.MarshalInFlight()
	require.NoError(t, err)
	assert.Equal(t, `{"profiles": [], "wintermRunnerModified": true}`, string(flagged))

	reparsed, err := Parse(flagged)
	require.NoError(t, err)
	assert.True(t, reparsed.InFlight())

	cleared, err := reparsed.MarshalCleared()
	require.NoError(t, err)
	assert.Equal(t, `{"profiles": [], "wintermRunnerModified": false}`, string(cleared))

	// clearing a document that never had the marker adds nothing
	plain, err := cfg.MarshalCleared()
	require.NoError(t, err)
	assert.Equal(t, raw, string(plain))
}

func TestMarshal_EscapesStrings(t *testing.T) {
	cfg, err := Parse([]byte(`{"profiles": [{"guid": "A", "name": "Alpha"}]}`))
	require.NoError(t, err)

	cfg.Profiles[0].StartingDirectory = `C:\Users\<me> & "co"`
	out, err := cfg.Marshal()
	require.NoError(t, err)

	reparsed, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\<me> & "co"`, reparsed.Profiles[0].StartingDirectory)
	assert.Contains(t, string(out), `<me> & \"co\"`)
}

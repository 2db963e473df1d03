package terminalconfig

import (
	"testing"

	"github.com/arthur-debert/wtlaunch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProfile(t *testing.T) {
	cfg, err := Parse([]byte(settingsJSON))
	require.NoError(t, err)

	tests := []struct {
		name     string
		query    string
		wantName string
		wantOK   bool
	}{
		{"exact name", "Command Prompt", "Command Prompt", true},
		{"name ignores case", "windows powershell", "Windows PowerShell", true},
		{"exact id", "{0caa0dad-35be-5f56-a8ff-afceeeaa6101}", "Command Prompt", true},
		{"id ignores case", "{0CAA0DAD-35BE-5F56-A8FF-AFCEEEAA6101}", "Command Prompt", true},
		{"id without braces", "0caa0dad-35be-5f56-a8ff-afceeeaa6101", "Command Prompt", true},
		{"hidden profiles still resolve", "azure cloud shell", "Azure Cloud Shell", true},
		{"surrounding space", "  Command Prompt ", "Command Prompt", true},
		{"no match", "Ubuntu", "", false},
		{"empty query", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := FindProfile(cfg, tt.query)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantName, p.Name)
			} else {
				assert.Nil(t, p)
			}
		})
	}
}

func TestFindProfile_FirstMatchWins(t *testing.T) {
	cfg, err := Parse([]byte(`{"profiles": [
		{"guid": "1", "name": "Shell"},
		{"guid": "2", "name": "shell"}
	]}`))
	require.NoError(t, err)

	p, ok := FindProfile(cfg, "SHELL")
	require.True(t, ok)
	assert.Equal(t, "1", p.ID)
}

func TestFindProfile_NameOnlyProfile(t *testing.T) {
	cfg, err := Parse([]byte(`{"profiles": [{"name": "Dynamic"}]}`))
	require.NoError(t, err)

	p, ok := FindProfile(cfg, "dynamic")
	require.True(t, ok)
	assert.Equal(t, "Dynamic", p.Key())
}

func TestVisibleProfiles(t *testing.T) {
	cfg, err := Parse([]byte(legacyJSON))
	require.NoError(t, err)

	visible := VisibleProfiles(cfg)
	require.Len(t, visible, 1)
	assert.Equal(t, "Alpha", visible[0].Name)
}

func TestSelectProfiles(t *testing.T) {
	cfg, err := Parse([]byte(legacyJSON))
	require.NoError(t, err)

	all, err := SelectProfiles(cfg, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	picked, err := SelectProfiles(cfg, []string{"beta", "B", "alpha"})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, "Beta", picked[0].Name)
	assert.Equal(t, "Alpha", picked[1].Name)

	_, err = SelectProfiles(cfg, []string{"alpha", "gamma"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrProfileNotFound))
}

func TestDefaultProfile(t *testing.T) {
	cfg, err := Parse([]byte(legacyJSON))
	require.NoError(t, err)

	p, ok := DefaultProfile(cfg)
	require.True(t, ok)
	assert.Equal(t, "Alpha", p.Name)
}

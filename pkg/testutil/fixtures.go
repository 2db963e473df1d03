package testutil

// SettingsJSON is a current-schema settings file with one visible and one
// hidden profile
const SettingsJSON = `{
    "$schema": "https://aka.ms/terminal-profiles-schema",
    "defaultProfile": "{2c4de342-38b7-51cf-b940-2309a097f518}",
    // keep comments
    "profiles": {
        "defaults": {},
        "list": [
            {
                "guid": "{61c54bbd-c2c6-5271-96e7-009a87ff44bf}",
                "name": "Alpha",
                "icon": "C:\\icons\\alpha.png",
                "hidden": false
            },
            {
                "guid": "{2c4de342-38b7-51cf-b940-2309a097f518}",
                "name": "Beta",
                "hidden": true
            },
            {
                "name": "Gamma",
                "source": "Windows.Terminal.Wsl"
            }
        ]
    }
}
`

// LegacyJSON is the profiles.json shape of early terminal releases
const LegacyJSON = `{
  "globals": {"defaultProfile": "A"},
  "profiles": [
    {"guid": "A", "name": "Alpha", "hidden": false},
    {"guid": "B", "name": "Beta", "hidden": true}
  ]
}`

// Profile ids used by SettingsJSON
const (
	AlphaID = "{61c54bbd-c2c6-5271-96e7-009a87ff44bf}"
	BetaID  = "{2c4de342-38b7-51cf-b940-2309a097f518}"
)

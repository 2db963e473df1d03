package terminalconfig

// settingsJSON is a trimmed settings.json in the current schema, comments
// included the way the terminal ships them.
const settingsJSON = `// This file was initially generated by Windows Terminal
{
    "$help": "https://aka.ms/terminal-documentation",
    "$schema": "https://aka.ms/terminal-profiles-schema",
    "defaultProfile": "{61c54bbd-c2c6-5271-96e7-009a87ff44bf}",
    "copyOnSelect": false,
    "profiles":
    {
        "defaults": {},
        "list":
        [
            {
                // Make changes here to the powershell.exe profile.
                "guid": "{61c54bbd-c2c6-5271-96e7-009a87ff44bf}",
                "name": "Windows PowerShell",
                "commandline": "powershell.exe",
                "hidden": false
            },
            {
                "guid": "{0caa0dad-35be-5f56-a8ff-afceeeaa6101}",
                "name": "Command Prompt",
                "icon": "ms-appx:///ProfileIcons/{0caa0dad-35be-5f56-a8ff-afceeeaa6101}.png",
                "hidden": false,
            },
            {
                "guid": "{b453ae62-4e3d-5e58-b989-0a998ec441b8}",
                "name": "Azure Cloud Shell",
                "source": "Windows.Terminal.Azure",
                "hidden": true
            }
        ]
    },
    "schemes": [],
    "actions": []
}
`

// legacyJSON is the profiles.json shape from early terminal releases
const legacyJSON = `{
  "globals": {
    "defaultProfile": "A",
    "initialCols": 120
  },
  "profiles": [
    {"guid": "A", "name": "Alpha", "hidden": false, "fontFace": "Cascadia Code"},
    {"guid": "B", "name": "Beta", "hidden": true}
  ],
  "extra": {"nested": [1, 2, 3]}
}`

// Package terminalconfig models the Windows Terminal settings file.
//
// The settings file belongs to the terminal, which reads and rewrites it while
// running, and it carries far more than wtlaunch cares about. The model here
// therefore keeps the raw document and only ever edits it surgically: Parse
// reads the handful of modeled fields (default profile, profile list, the
// in-flight marker) and Marshal splices changed values back into the original
// bytes. Every unmodeled key, the formatting, key order and comments survive
// untouched, and an unmodified configuration marshals to the exact input.
//
// Both schema generations are accepted:
//
//	legacy profiles.json:  {"globals": {"defaultProfile": ...}, "profiles": [...]}
//	settings.json:         {"defaultProfile": ..., "profiles": {"list": [...]}}
package terminalconfig

// Package registry provides access to a hierarchical key/value store shaped
// like the Windows registry.
//
// Store is the small surface the shortcut installer needs: enumerate subkeys,
// create keys, set string values and delete whole trees. Paths are relative
// to the store's root and use backslash separators, e.g.
// `Software\Classes\Directory\shell`. Key names compare case-insensitively,
// as they do in the registry.
//
// Two implementations exist:
//   - NewSystemStore: HKEY_CURRENT_USER through golang.org/x/sys/windows/registry
//     (Windows only; other platforms get an UNSUPPORTED error)
//   - NewMemoryStore: an in-memory tree, used by tests and dry runs
package registry

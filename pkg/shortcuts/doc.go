// Package shortcuts manages the Explorer context menu entries that open the
// terminal with a given profile.
//
// Every entry the tool creates carries an ownership marker subkey. Uninstall
// and reinstall only ever touch marked keys, so entries created by hand or by
// other tools under the same shell roots are left alone, even when their
// names collide with ours.
package shortcuts

// Package transaction runs an action against the terminal settings file with
// a recovery point on disk.
//
// One transaction is:
//
//  1. recover: a backup left by an interrupted run is copied back over the
//     settings file and removed
//  2. read: the settings are read and parsed; if another holder has the
//     in-file marker set, wait (bounded) for it to clear
//  3. backup: the bytes just read are written to <settings>.bak and the live
//     file is rewritten with the marker set
//  4. act: the action inspects or mutates the configuration through a
//     Session; Apply writes the mutation temporarily, Commit makes it the
//     new persistent state
//  5. finish: the live file is reverted to the original bytes (or set to the
//     committed bytes) and the backup is removed
//
// Errors raised by the action, panics included, never skip step 5. They are
// returned in Result.ActionErr once the settings file is back in a clean
// state. The marker is cooperative: nothing stops a writer that ignores it.
package transaction

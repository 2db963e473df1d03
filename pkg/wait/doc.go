// Package wait implements bounded polling.
//
// Two loops in wtlaunch wait on something outside the process: the settings
// transaction waits for another holder to clear the in-file marker, and the
// launcher waits for the terminal window to show up. Both use a Waiter, which
// polls a condition on a fixed interval until a deadline. A Waiter takes an
// injectable Clock so tests can run the loop in virtual time, and an optional
// Trigger channel that wakes the loop early (see WatchFile).
package wait

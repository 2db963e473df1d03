// Package launcher starts the terminal in a working directory and waits for
// its window to come up.
package launcher

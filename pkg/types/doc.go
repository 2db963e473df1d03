// Package types holds the small interfaces shared across wtlaunch packages.
package types

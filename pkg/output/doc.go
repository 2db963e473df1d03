// Package output renders command results for people and for scripts.
//
// Human output is styled with lipgloss using the semantic styles declared in
// styles.yaml (Success, Warning, Error, Heading, ...). Colors are adaptive, so
// the same names read well on light and dark terminals. When stdout is not a
// terminal, NO_COLOR is set, or the terminal has no color support, the same
// text is produced without escape codes.
//
// Tabular results (profiles, status) are drawn with go-pretty, and can be
// emitted as JSON or YAML instead.
package output

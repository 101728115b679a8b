// Package cli implements the timers command-line client: one subcommand per
// invocation, a session token cached in a local file, and plain-text tables
// for timer listings.
package cli

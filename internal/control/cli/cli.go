// Package cli provides the command-line interface for quickedit.
package cli

// CommandLineOpts are the command line options and commands, for `go-flags`
// to parse command line args into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TUICommand     TUICommand     `command:"tui" subcommands-optional:"true" description:"Edit the configured fields in place in a terminal UI"`
	ReplayCommand  ReplayCommand  `command:"replay" subcommands-optional:"true" description:"Run a script of interactions headless and print the outcomes"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true" description:"Show the program version"`
}

// Opts are the parsed command line options.
var Opts CommandLineOpts

package cli

import (
	"fmt"
)

const version = "0.1.0"

// VersionCommand is the `version` command, for `go-flags` to parse command
// line args into.
type VersionCommand struct{}

// Execute shows the program version.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	fmt.Println("quickedit", version)
	return nil
}

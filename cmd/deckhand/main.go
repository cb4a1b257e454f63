// cmd/deckhand/main.go
package main

import (
	cmd "github.com/mwiater/deckhand/internal/cli"
)

// main starts the deckhand CLI application by delegating to the
// cobra root command defined in the deckhand package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}

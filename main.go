// Package main provides the entry point for the dcj CLI tool.
// It delegates execution to the cmd package to maintain clean separation
// between main entry logic and command implementation details.
package main

import (
	"dcj/cmd"
)

func main() {
	cmd.Execute()
}

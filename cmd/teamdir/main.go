// Package main provides the teamdir CLI tool for validating a team data
// repository.
package main

import "github.com/orgtools/teamdir/cmd/teamdir/commands"

func main() {
	commands.Execute(VERSION)
}

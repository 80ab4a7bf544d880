// Package main is the entry point for the sequence puzzle CLI.
package main

import "sequence.dev/pkg/sequence/cmd"

func main() {
	cmd.Execute()
}

// Package main is the entry point for the cairo-coverage CLI.
package main

import "cairocov.dev/pkg/cairocov/cmd"

func main() {
	cmd.Execute()
}

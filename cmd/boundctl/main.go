// Package main provides the boundctl CLI.
package main

import "github.com/mesh-intelligence/bounded/internal/cli"

func main() {
	cli.Execute()
}

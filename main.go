// Package main is the entry point for the valostats CLI tool, which stores
// Valorant event stat tables and renders per-map player radar charts.
package main

import "github.com/pable/go-valo-stats/cmd"

func main() {
	cmd.Execute()
}

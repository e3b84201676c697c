package main

import "github.com/mcoot/puzzlebox/internal/cli"

func main() {
	cli.Execute()
}

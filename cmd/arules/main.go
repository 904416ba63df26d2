package main

import "github.com/YuminosukeSato/arules/internal/cli"

func main() {
	cli.Execute()
}

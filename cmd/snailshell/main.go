package main

import "github.com/katalvlaran/snailshell/internal/cli"

func main() {
	cli.Execute()
}

package main

import (
	"github.com/DanaL/snek/cmd/snek/commands"
)

func main() {
	commands.Execute()
}

package main

import "github.com/strrl/build-in-public/cmd/build-in-public/commands"

func main() {
	commands.Execute()
}

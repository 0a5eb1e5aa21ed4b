package main

import "github.com/brogergvhs/komikat/cmd"

func main() {
	cmd.Execute()
}

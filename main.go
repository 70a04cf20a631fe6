package main

import "github.com/philipparndt/gohabitat/cmd"

func main() {
	cmd.Execute()
}

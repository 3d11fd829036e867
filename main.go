package main

import "github.com/focuskit/focuskit/cmd"

func main() {
	cmd.Execute()
}

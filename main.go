package main

import "github.com/mouse-blink/stdscope/cmd"

func main() {
	cmd.Execute()
}

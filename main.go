package main

import "github.com/mouse-blink/cprobe/cmd"

func main() {
	cmd.Execute()
}

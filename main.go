// Package main is the entry point of the lox command.
package main

import "github.com/mouse-blink/lox/cmd"

func main() {
	cmd.Execute()
}

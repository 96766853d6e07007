package main

import "github.com/alexiusacademia/mcshear/cmd"

func main() {
	cmd.Execute()
}

package main

import "ptable/cmd"

func main() {
	cmd.Execute()
}

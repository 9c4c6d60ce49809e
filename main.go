package main

import "mactweaks/cmd"

func main() {
	cmd.Execute()
}

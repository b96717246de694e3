package main

import "aliasgc/cmd"

func main() {
	cmd.Execute()
}

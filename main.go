package main

import "bridgeout/cmd"

func main() {
	cmd.Execute()
}

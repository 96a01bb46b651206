package main

import "calcvault/cmd/calcvault-cli/cmd"

func main() {
	cmd.Execute()
}

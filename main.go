package main

import "github.com/Ericbutler1209/Team-Yellow/cmd"

func main() {
	cmd.Execute()
}

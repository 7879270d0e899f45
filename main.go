package main

import "aleatoria/motif/cmd"

func main() {
	cmd.Execute()
}

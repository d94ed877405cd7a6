package main

import "mycelica/forest/cmd"

func main() {
	cmd.Execute()
}

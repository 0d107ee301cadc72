package main

import "github.com/Daskott/keepme/cmd"

func main() {
	cmd.Execute()
}

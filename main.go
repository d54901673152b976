package main

import "bloggo/cmd"

func main() {
	cmd.Execute()
}

package main

import "schema-merger/cmd"

func main() {
	cmd.Execute()
}

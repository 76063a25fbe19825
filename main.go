package main

import "github.com/notargets/gosubcell/cmd"

func main() {
	cmd.Execute()
}

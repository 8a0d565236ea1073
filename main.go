package main

import "github.com/seqr-cli/seqr/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/mfm-labs/tidycharts/cmd/tidycharts/cmd"

func main() {
	cmd.Execute()
}

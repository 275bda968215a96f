package main

import "github.com/deploymenttheory/go-vector/cmd"

func main() {
	cmd.Execute()
}

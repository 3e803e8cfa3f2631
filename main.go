package main

import (
	"github.com/avarner/serbench/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/picrasm/picrasm/cmd"
)

func main() {
	cmd.Execute()
}

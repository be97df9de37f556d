package main

import (
	"github.com/exprlang/exprc/pkg/cmd"
)

func main() {
	cmd.Execute()
}

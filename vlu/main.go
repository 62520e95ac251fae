package main

import (
	"github.com/calebcase/vlu/vlu/cmd"
)

func main() {
	cmd.Execute()
}

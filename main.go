package main

import (
	"github.com/nicoche/measurements-koyeb/cmd"
)

func main() {
	cmd.Execute()
}

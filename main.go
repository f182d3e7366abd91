package main

import (
	"os"

	"github.com/Sena-ops/reducerguard/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

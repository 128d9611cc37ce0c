package main

import (
	"os"

	"github.com/gfxprim/automata/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

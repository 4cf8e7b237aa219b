package main

import (
	"os"
	_ "time/tzdata"

	"github.com/jdlien/validator/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

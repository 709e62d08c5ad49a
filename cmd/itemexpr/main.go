package main

import (
	"os"

	"github.com/arthur-debert/itemexpr/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

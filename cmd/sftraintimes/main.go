package main

import (
	"os"

	"github.com/theoremus-urban-solutions/sftraintimes/cmd/sftraintimes/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

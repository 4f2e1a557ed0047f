package main

import (
	"os"

	"github.com/RajuPerumal/hall-booking/cmd/hallctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

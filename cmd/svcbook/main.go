package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Aastech07/Servicebookingapp/internal/ui"
)

func main() {
	// Optional .env for SVCBOOK_DATA_DIR and friends.
	_ = godotenv.Load()

	// If a CLI subcommand is provided, handle it and exit.
	if len(os.Args) > 1 {
		if handled, code := runCLI(os.Args[1:]); handled {
			os.Exit(code)
		}
	}
	if err := ui.New().Run(); err != nil {
		panic(err)
	}
}

package main

import (
	"log"
	"os"

	"github.com/autobrowse/playwright-mcp/runner"
)

func main() {
	if err := runner.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

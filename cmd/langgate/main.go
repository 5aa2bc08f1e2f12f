package main

import (
	"fmt"
	"os"

	"github.com/langgate/langgate/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "langgate:", err)
		os.Exit(1)
	}
}

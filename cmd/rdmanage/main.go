package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/rdmanage/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{}
	defer app.Close()

	return cli.NewRootCmd(app).Execute()
}

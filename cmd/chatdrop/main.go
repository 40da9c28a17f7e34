package main

import (
	"os"

	"github.com/chatdrop/chatdrop/internal/app/cli"
)

func main() {
	os.Exit(cli.Run(os.Args))
}

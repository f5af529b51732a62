package main

import (
	"fmt"
	"os"

	"github.com/nfiedler/mkqsortbench/cli"
)

func main() {
	if err := cli.App.Run(os.Args); err != nil {
		fmt.Println("Error running mkqsortbench:", err)
		os.Exit(1)
	}
}

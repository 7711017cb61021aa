package main

import (
	"os"

	"github.com/katalvlaran/fizzbuzz/internal/plotapp"
)

func main() {
	os.Exit(plotapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}

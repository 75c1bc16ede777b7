package main

import (
	"os"

	"github.com/conneroisu/gopatterns/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/EtaileddigitalIndia/lms5-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

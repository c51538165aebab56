package main

import (
	"os"

	"github.com/Khoiidayy/linguabot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

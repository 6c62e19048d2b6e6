package main

import (
	"os"

	"github.com/DivyKalyani05/SPF-prediction-draft-2/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

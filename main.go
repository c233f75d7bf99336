package main

import (
	"os"

	"github.com/dashline-io/dashline/cmd"
	"github.com/dashline-io/dashline/pkg/utils/pen"
)

func main() {
	pen.InitLog()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
